// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/kelsic/dialogia/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/kelsic/dialogia/ent/oraclerequestevent"
	"github.com/kelsic/dialogia/ent/runevent"
	"github.com/kelsic/dialogia/ent/verdictevent"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// OracleRequestEvent is the client for interacting with the OracleRequestEvent builders.
	OracleRequestEvent *OracleRequestEventClient
	// RunEvent is the client for interacting with the RunEvent builders.
	RunEvent *RunEventClient
	// VerdictEvent is the client for interacting with the VerdictEvent builders.
	VerdictEvent *VerdictEventClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.OracleRequestEvent = NewOracleRequestEventClient(c.config)
	c.RunEvent = NewRunEventClient(c.config)
	c.VerdictEvent = NewVerdictEventClient(c.config)
}

type (
	// config is the configuration for the client and its builder.
	config struct {
		// driver used for executing database requests.
		driver dialect.Driver
		// debug enable a debug logging.
		debug bool
		// log used for logging on debug mode.
		log func(...any)
		// hooks to execute on mutations.
		hooks *hooks
		// interceptors to execute on queries.
		inters *inters
	}
	// Option function to configure the client.
	Option func(*config)
)

// newConfig creates a new config for the client.
func newConfig(opts ...Option) config {
	cfg := config{log: log.Println, hooks: &hooks{}, inters: &inters{}}
	cfg.options(opts...)
	return cfg
}

// options applies the options on the config object.
func (c *config) options(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
	if c.debug {
		c.driver = dialect.Debug(c.driver, c.log)
	}
}

// Debug enables debug logging on the ent.Driver.
func Debug() Option {
	return func(c *config) {
		c.debug = true
	}
}

// Log sets the logging function for debug mode.
func Log(fn func(...any)) Option {
	return func(c *config) {
		c.log = fn
	}
}

// Driver configures the client driver.
func Driver(driver dialect.Driver) Option {
	return func(c *config) {
		c.driver = driver
	}
}

// Open opens a database/sql.DB specified by the driver name and
// the data source name, and returns a new client attached to it.
// Optional parameters can be added for configuring the client.
func Open(driverName, dataSourceName string, options ...Option) (*Client, error) {
	switch driverName {
	case dialect.MySQL, dialect.Postgres, dialect.SQLite:
		drv, err := sql.Open(driverName, dataSourceName)
		if err != nil {
			return nil, err
		}
		return NewClient(append(options, Driver(drv))...), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %q", driverName)
	}
}

// ErrTxStarted is returned when trying to start a new transaction from a transactional client.
var ErrTxStarted = errors.New("ent: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:                ctx,
		config:             cfg,
		OracleRequestEvent: NewOracleRequestEventClient(cfg),
		RunEvent:           NewRunEventClient(cfg),
		VerdictEvent:       NewVerdictEventClient(cfg),
	}, nil
}

// BeginTx returns a transactional client with specified options.
func (c *Client) BeginTx(ctx context.Context, opts *sql.TxOptions) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, errors.New("ent: cannot start a transaction within a transaction")
	}
	tx, err := c.driver.(interface {
		BeginTx(context.Context, *sql.TxOptions) (dialect.Tx, error)
	}).BeginTx(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = &txDriver{tx: tx, drv: c.driver}
	return &Tx{
		ctx:                ctx,
		config:             cfg,
		OracleRequestEvent: NewOracleRequestEventClient(cfg),
		RunEvent:           NewRunEventClient(cfg),
		VerdictEvent:       NewVerdictEventClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		OracleRequestEvent.
//		Query().
//		Count(ctx)
func (c *Client) Debug() *Client {
	if c.debug {
		return c
	}
	cfg := c.config
	cfg.driver = dialect.Debug(c.driver, c.log)
	client := &Client{config: cfg}
	client.init()
	return client
}

// Close closes the database connection and prevents new queries from starting.
func (c *Client) Close() error {
	return c.driver.Close()
}

// Use adds the mutation hooks to all the entity clients.
// In order to add hooks to a specific client, call: `client.Node.Use(...)`.
func (c *Client) Use(hooks ...Hook) {
	c.OracleRequestEvent.Use(hooks...)
	c.RunEvent.Use(hooks...)
	c.VerdictEvent.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.OracleRequestEvent.Intercept(interceptors...)
	c.RunEvent.Intercept(interceptors...)
	c.VerdictEvent.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *OracleRequestEventMutation:
		return c.OracleRequestEvent.mutate(ctx, m)
	case *RunEventMutation:
		return c.RunEvent.mutate(ctx, m)
	case *VerdictEventMutation:
		return c.VerdictEvent.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// OracleRequestEventClient is a client for the OracleRequestEvent schema.
type OracleRequestEventClient struct {
	config
}

// NewOracleRequestEventClient returns a client for the OracleRequestEvent from the given config.
func NewOracleRequestEventClient(c config) *OracleRequestEventClient {
	return &OracleRequestEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `oraclerequestevent.Hooks(f(g(h())))`.
func (c *OracleRequestEventClient) Use(hooks ...Hook) {
	c.hooks.OracleRequestEvent = append(c.hooks.OracleRequestEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `oraclerequestevent.Intercept(f(g(h())))`.
func (c *OracleRequestEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.OracleRequestEvent = append(c.inters.OracleRequestEvent, interceptors...)
}

// Create returns a builder for creating a OracleRequestEvent entity.
func (c *OracleRequestEventClient) Create() *OracleRequestEventCreate {
	mutation := newOracleRequestEventMutation(c.config, OpCreate)
	return &OracleRequestEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of OracleRequestEvent entities.
func (c *OracleRequestEventClient) CreateBulk(builders ...*OracleRequestEventCreate) *OracleRequestEventCreateBulk {
	return &OracleRequestEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *OracleRequestEventClient) MapCreateBulk(slice any, setFunc func(*OracleRequestEventCreate, int)) *OracleRequestEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &OracleRequestEventCreateBulk{err: fmt.Errorf("calling to OracleRequestEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*OracleRequestEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &OracleRequestEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for OracleRequestEvent.
func (c *OracleRequestEventClient) Update() *OracleRequestEventUpdate {
	mutation := newOracleRequestEventMutation(c.config, OpUpdate)
	return &OracleRequestEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *OracleRequestEventClient) UpdateOne(_m *OracleRequestEvent) *OracleRequestEventUpdateOne {
	mutation := newOracleRequestEventMutation(c.config, OpUpdateOne, withOracleRequestEvent(_m))
	return &OracleRequestEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *OracleRequestEventClient) UpdateOneID(id int) *OracleRequestEventUpdateOne {
	mutation := newOracleRequestEventMutation(c.config, OpUpdateOne, withOracleRequestEventID(id))
	return &OracleRequestEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for OracleRequestEvent.
func (c *OracleRequestEventClient) Delete() *OracleRequestEventDelete {
	mutation := newOracleRequestEventMutation(c.config, OpDelete)
	return &OracleRequestEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *OracleRequestEventClient) DeleteOne(_m *OracleRequestEvent) *OracleRequestEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *OracleRequestEventClient) DeleteOneID(id int) *OracleRequestEventDeleteOne {
	builder := c.Delete().Where(oraclerequestevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &OracleRequestEventDeleteOne{builder}
}

// Query returns a query builder for OracleRequestEvent.
func (c *OracleRequestEventClient) Query() *OracleRequestEventQuery {
	return &OracleRequestEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeOracleRequestEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a OracleRequestEvent entity by its id.
func (c *OracleRequestEventClient) Get(ctx context.Context, id int) (*OracleRequestEvent, error) {
	return c.Query().Where(oraclerequestevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *OracleRequestEventClient) GetX(ctx context.Context, id int) *OracleRequestEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *OracleRequestEventClient) Hooks() []Hook {
	return c.hooks.OracleRequestEvent
}

// Interceptors returns the client interceptors.
func (c *OracleRequestEventClient) Interceptors() []Interceptor {
	return c.inters.OracleRequestEvent
}

func (c *OracleRequestEventClient) mutate(ctx context.Context, m *OracleRequestEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&OracleRequestEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&OracleRequestEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&OracleRequestEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&OracleRequestEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown OracleRequestEvent mutation op: %q", m.Op())
	}
}

// RunEventClient is a client for the RunEvent schema.
type RunEventClient struct {
	config
}

// NewRunEventClient returns a client for the RunEvent from the given config.
func NewRunEventClient(c config) *RunEventClient {
	return &RunEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `runevent.Hooks(f(g(h())))`.
func (c *RunEventClient) Use(hooks ...Hook) {
	c.hooks.RunEvent = append(c.hooks.RunEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `runevent.Intercept(f(g(h())))`.
func (c *RunEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.RunEvent = append(c.inters.RunEvent, interceptors...)
}

// Create returns a builder for creating a RunEvent entity.
func (c *RunEventClient) Create() *RunEventCreate {
	mutation := newRunEventMutation(c.config, OpCreate)
	return &RunEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of RunEvent entities.
func (c *RunEventClient) CreateBulk(builders ...*RunEventCreate) *RunEventCreateBulk {
	return &RunEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *RunEventClient) MapCreateBulk(slice any, setFunc func(*RunEventCreate, int)) *RunEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &RunEventCreateBulk{err: fmt.Errorf("calling to RunEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*RunEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &RunEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for RunEvent.
func (c *RunEventClient) Update() *RunEventUpdate {
	mutation := newRunEventMutation(c.config, OpUpdate)
	return &RunEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *RunEventClient) UpdateOne(_m *RunEvent) *RunEventUpdateOne {
	mutation := newRunEventMutation(c.config, OpUpdateOne, withRunEvent(_m))
	return &RunEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *RunEventClient) UpdateOneID(id int) *RunEventUpdateOne {
	mutation := newRunEventMutation(c.config, OpUpdateOne, withRunEventID(id))
	return &RunEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for RunEvent.
func (c *RunEventClient) Delete() *RunEventDelete {
	mutation := newRunEventMutation(c.config, OpDelete)
	return &RunEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *RunEventClient) DeleteOne(_m *RunEvent) *RunEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *RunEventClient) DeleteOneID(id int) *RunEventDeleteOne {
	builder := c.Delete().Where(runevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &RunEventDeleteOne{builder}
}

// Query returns a query builder for RunEvent.
func (c *RunEventClient) Query() *RunEventQuery {
	return &RunEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeRunEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a RunEvent entity by its id.
func (c *RunEventClient) Get(ctx context.Context, id int) (*RunEvent, error) {
	return c.Query().Where(runevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *RunEventClient) GetX(ctx context.Context, id int) *RunEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *RunEventClient) Hooks() []Hook {
	return c.hooks.RunEvent
}

// Interceptors returns the client interceptors.
func (c *RunEventClient) Interceptors() []Interceptor {
	return c.inters.RunEvent
}

func (c *RunEventClient) mutate(ctx context.Context, m *RunEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&RunEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&RunEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&RunEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&RunEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown RunEvent mutation op: %q", m.Op())
	}
}

// VerdictEventClient is a client for the VerdictEvent schema.
type VerdictEventClient struct {
	config
}

// NewVerdictEventClient returns a client for the VerdictEvent from the given config.
func NewVerdictEventClient(c config) *VerdictEventClient {
	return &VerdictEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `verdictevent.Hooks(f(g(h())))`.
func (c *VerdictEventClient) Use(hooks ...Hook) {
	c.hooks.VerdictEvent = append(c.hooks.VerdictEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `verdictevent.Intercept(f(g(h())))`.
func (c *VerdictEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.VerdictEvent = append(c.inters.VerdictEvent, interceptors...)
}

// Create returns a builder for creating a VerdictEvent entity.
func (c *VerdictEventClient) Create() *VerdictEventCreate {
	mutation := newVerdictEventMutation(c.config, OpCreate)
	return &VerdictEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of VerdictEvent entities.
func (c *VerdictEventClient) CreateBulk(builders ...*VerdictEventCreate) *VerdictEventCreateBulk {
	return &VerdictEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *VerdictEventClient) MapCreateBulk(slice any, setFunc func(*VerdictEventCreate, int)) *VerdictEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &VerdictEventCreateBulk{err: fmt.Errorf("calling to VerdictEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*VerdictEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &VerdictEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for VerdictEvent.
func (c *VerdictEventClient) Update() *VerdictEventUpdate {
	mutation := newVerdictEventMutation(c.config, OpUpdate)
	return &VerdictEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *VerdictEventClient) UpdateOne(_m *VerdictEvent) *VerdictEventUpdateOne {
	mutation := newVerdictEventMutation(c.config, OpUpdateOne, withVerdictEvent(_m))
	return &VerdictEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *VerdictEventClient) UpdateOneID(id int) *VerdictEventUpdateOne {
	mutation := newVerdictEventMutation(c.config, OpUpdateOne, withVerdictEventID(id))
	return &VerdictEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for VerdictEvent.
func (c *VerdictEventClient) Delete() *VerdictEventDelete {
	mutation := newVerdictEventMutation(c.config, OpDelete)
	return &VerdictEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *VerdictEventClient) DeleteOne(_m *VerdictEvent) *VerdictEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *VerdictEventClient) DeleteOneID(id int) *VerdictEventDeleteOne {
	builder := c.Delete().Where(verdictevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &VerdictEventDeleteOne{builder}
}

// Query returns a query builder for VerdictEvent.
func (c *VerdictEventClient) Query() *VerdictEventQuery {
	return &VerdictEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeVerdictEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a VerdictEvent entity by its id.
func (c *VerdictEventClient) Get(ctx context.Context, id int) (*VerdictEvent, error) {
	return c.Query().Where(verdictevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *VerdictEventClient) GetX(ctx context.Context, id int) *VerdictEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *VerdictEventClient) Hooks() []Hook {
	return c.hooks.VerdictEvent
}

// Interceptors returns the client interceptors.
func (c *VerdictEventClient) Interceptors() []Interceptor {
	return c.inters.VerdictEvent
}

func (c *VerdictEventClient) mutate(ctx context.Context, m *VerdictEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&VerdictEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&VerdictEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&VerdictEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&VerdictEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown VerdictEvent mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		OracleRequestEvent, RunEvent, VerdictEvent []ent.Hook
	}
	inters struct {
		OracleRequestEvent, RunEvent, VerdictEvent []ent.Interceptor
	}
)
