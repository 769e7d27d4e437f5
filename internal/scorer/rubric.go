package scorer

import (
	"fmt"
	"strings"

	"github.com/kelsic/dialogia/internal/dialogue"
)

const rubricSystem = `You are evaluating a teaching dialogue against a pedagogical rubric.
The teachers must guide through questions, honor the student's emotional
state, and leave the student in control of their own learning. You score
one dimension at a time, exactly as instructed, and nothing else.`

// dimensionInstructions maps each dimension to its scoring instruction.
// The trauma instruction additionally asks for the hard-stop flags.
var dimensionInstructions = map[string]string{
	DimTraumaBoundaryRespect: `Score TRAUMA BOUNDARY RISK on a 0-10 scale.
0 means every boundary was respected; 10 means the dialogue was actively harmful.
Also report every hard-stop boundary that was crossed, from this closed set:
- shaming: a teacher shamed, mocked, or belittled the student
- complete_answer: a teacher handed over a complete answer instead of guiding
- emotional_dismissal: a teacher ignored or dismissed the student's emotional state
- agency_removal: a teacher took control or choice away from the student
Report an empty list when no boundary was crossed.`,

	DimFlowZoneEngagement: `Score FLOW ZONE ENGAGEMENT on a 0-10 scale.
10 means the challenge was calibrated to the student's capability: hard enough
to stretch them, never so hard they drowned or so easy they coasted.
0 means the pacing ignored the student's capability entirely.`,

	DimAgencyPreservation: `Score AGENCY PRESERVATION on a 0-10 scale.
10 means the student kept choice and control throughout: they could push back,
redirect, or disagree without consequence, and the teachers followed their lead.
0 means the teachers steamrolled the student.`,

	DimAnswerAvoidance: `Score ANSWER AVOIDANCE on a 0-10 scale.
10 means the teachers guided purely through questions that referenced the
student's actual words. 0 means they dictated answers directly.`,
}

func rubricMessage(dimension, rendered string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "DIALOGUE:\n\n%s\n\n", rendered)
	b.WriteString(dimensionInstructions[dimension])
	return b.String()
}

// renderForScoring flattens a transcript for the rubric oracle. Unlike
// the in-dialogue view, the student's non-diegetic layer is included so
// the scorer can see declared reasoning alongside the spoken words.
func renderForScoring(t *dialogue.Transcript) string {
	var b strings.Builder
	for _, e := range t.Exchanges {
		switch e.Role {
		case dialogue.RolePersona:
			fmt.Fprintf(&b, "Teacher (%s): %s\n", e.SpeakerID, e.Diegetic)
		case dialogue.RoleStudent:
			fmt.Fprintf(&b, "Student (%s): %s\n", e.SpeakerID, e.Diegetic)
			if e.NonDiegetic != "" {
				fmt.Fprintf(&b, "Student's thinking (non-diegetic): %s\n", e.NonDiegetic)
			}
		}
	}
	return b.String()
}
