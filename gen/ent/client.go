// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/chandrashekharddev/agroscheme/gen/ent/migrate"
	"github.com/google/uuid"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/chandrashekharddev/agroscheme/gen/ent/application"
	"github.com/chandrashekharddev/agroscheme/gen/ent/farmer"
	"github.com/chandrashekharddev/agroscheme/gen/ent/farmerdocument"
	"github.com/chandrashekharddev/agroscheme/gen/ent/notification"
	"github.com/chandrashekharddev/agroscheme/gen/ent/scheme"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// Application is the client for interacting with the Application builders.
	Application *ApplicationClient
	// Farmer is the client for interacting with the Farmer builders.
	Farmer *FarmerClient
	// FarmerDocument is the client for interacting with the FarmerDocument builders.
	FarmerDocument *FarmerDocumentClient
	// Notification is the client for interacting with the Notification builders.
	Notification *NotificationClient
	// Scheme is the client for interacting with the Scheme builders.
	Scheme *SchemeClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.Application = NewApplicationClient(c.config)
	c.Farmer = NewFarmerClient(c.config)
	c.FarmerDocument = NewFarmerDocumentClient(c.config)
	c.Notification = NewNotificationClient(c.config)
	c.Scheme = NewSchemeClient(c.config)
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
		ctx:            ctx,
		config:         cfg,
		Application:    NewApplicationClient(cfg),
		Farmer:         NewFarmerClient(cfg),
		FarmerDocument: NewFarmerDocumentClient(cfg),
		Notification:   NewNotificationClient(cfg),
		Scheme:         NewSchemeClient(cfg),
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
		ctx:            ctx,
		config:         cfg,
		Application:    NewApplicationClient(cfg),
		Farmer:         NewFarmerClient(cfg),
		FarmerDocument: NewFarmerDocumentClient(cfg),
		Notification:   NewNotificationClient(cfg),
		Scheme:         NewSchemeClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		Application.
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
	c.Application.Use(hooks...)
	c.Farmer.Use(hooks...)
	c.FarmerDocument.Use(hooks...)
	c.Notification.Use(hooks...)
	c.Scheme.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.Application.Intercept(interceptors...)
	c.Farmer.Intercept(interceptors...)
	c.FarmerDocument.Intercept(interceptors...)
	c.Notification.Intercept(interceptors...)
	c.Scheme.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *ApplicationMutation:
		return c.Application.mutate(ctx, m)
	case *FarmerMutation:
		return c.Farmer.mutate(ctx, m)
	case *FarmerDocumentMutation:
		return c.FarmerDocument.mutate(ctx, m)
	case *NotificationMutation:
		return c.Notification.mutate(ctx, m)
	case *SchemeMutation:
		return c.Scheme.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// ApplicationClient is a client for the Application schema.
type ApplicationClient struct {
	config
}

// NewApplicationClient returns a client for the Application from the given config.
func NewApplicationClient(c config) *ApplicationClient {
	return &ApplicationClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `application.Hooks(f(g(h())))`.
func (c *ApplicationClient) Use(hooks ...Hook) {
	c.hooks.Application = append(c.hooks.Application, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `application.Intercept(f(g(h())))`.
func (c *ApplicationClient) Intercept(interceptors ...Interceptor) {
	c.inters.Application = append(c.inters.Application, interceptors...)
}

// Create returns a builder for creating a Application entity.
func (c *ApplicationClient) Create() *ApplicationCreate {
	mutation := newApplicationMutation(c.config, OpCreate)
	return &ApplicationCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Application entities.
func (c *ApplicationClient) CreateBulk(builders ...*ApplicationCreate) *ApplicationCreateBulk {
	return &ApplicationCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ApplicationClient) MapCreateBulk(slice any, setFunc func(*ApplicationCreate, int)) *ApplicationCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ApplicationCreateBulk{err: fmt.Errorf("calling to ApplicationClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ApplicationCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ApplicationCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Application.
func (c *ApplicationClient) Update() *ApplicationUpdate {
	mutation := newApplicationMutation(c.config, OpUpdate)
	return &ApplicationUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ApplicationClient) UpdateOne(_m *Application) *ApplicationUpdateOne {
	mutation := newApplicationMutation(c.config, OpUpdateOne, withApplication(_m))
	return &ApplicationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ApplicationClient) UpdateOneID(id uuid.UUID) *ApplicationUpdateOne {
	mutation := newApplicationMutation(c.config, OpUpdateOne, withApplicationID(id))
	return &ApplicationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Application.
func (c *ApplicationClient) Delete() *ApplicationDelete {
	mutation := newApplicationMutation(c.config, OpDelete)
	return &ApplicationDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ApplicationClient) DeleteOne(_m *Application) *ApplicationDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ApplicationClient) DeleteOneID(id uuid.UUID) *ApplicationDeleteOne {
	builder := c.Delete().Where(application.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ApplicationDeleteOne{builder}
}

// Query returns a query builder for Application.
func (c *ApplicationClient) Query() *ApplicationQuery {
	return &ApplicationQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeApplication},
		inters: c.Interceptors(),
	}
}

// Get returns a Application entity by its id.
func (c *ApplicationClient) Get(ctx context.Context, id uuid.UUID) (*Application, error) {
	return c.Query().Where(application.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ApplicationClient) GetX(ctx context.Context, id uuid.UUID) *Application {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryFarmer queries the farmer edge of a Application.
func (c *ApplicationClient) QueryFarmer(_m *Application) *FarmerQuery {
	query := (&FarmerClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(application.Table, application.FieldID, id),
			sqlgraph.To(farmer.Table, farmer.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, application.FarmerTable, application.FarmerColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryScheme queries the scheme edge of a Application.
func (c *ApplicationClient) QueryScheme(_m *Application) *SchemeQuery {
	query := (&SchemeClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(application.Table, application.FieldID, id),
			sqlgraph.To(scheme.Table, scheme.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, application.SchemeTable, application.SchemeColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ApplicationClient) Hooks() []Hook {
	return c.hooks.Application
}

// Interceptors returns the client interceptors.
func (c *ApplicationClient) Interceptors() []Interceptor {
	return c.inters.Application
}

func (c *ApplicationClient) mutate(ctx context.Context, m *ApplicationMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ApplicationCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ApplicationUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ApplicationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ApplicationDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Application mutation op: %q", m.Op())
	}
}

// FarmerClient is a client for the Farmer schema.
type FarmerClient struct {
	config
}

// NewFarmerClient returns a client for the Farmer from the given config.
func NewFarmerClient(c config) *FarmerClient {
	return &FarmerClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `farmer.Hooks(f(g(h())))`.
func (c *FarmerClient) Use(hooks ...Hook) {
	c.hooks.Farmer = append(c.hooks.Farmer, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `farmer.Intercept(f(g(h())))`.
func (c *FarmerClient) Intercept(interceptors ...Interceptor) {
	c.inters.Farmer = append(c.inters.Farmer, interceptors...)
}

// Create returns a builder for creating a Farmer entity.
func (c *FarmerClient) Create() *FarmerCreate {
	mutation := newFarmerMutation(c.config, OpCreate)
	return &FarmerCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Farmer entities.
func (c *FarmerClient) CreateBulk(builders ...*FarmerCreate) *FarmerCreateBulk {
	return &FarmerCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *FarmerClient) MapCreateBulk(slice any, setFunc func(*FarmerCreate, int)) *FarmerCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &FarmerCreateBulk{err: fmt.Errorf("calling to FarmerClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*FarmerCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &FarmerCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Farmer.
func (c *FarmerClient) Update() *FarmerUpdate {
	mutation := newFarmerMutation(c.config, OpUpdate)
	return &FarmerUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *FarmerClient) UpdateOne(_m *Farmer) *FarmerUpdateOne {
	mutation := newFarmerMutation(c.config, OpUpdateOne, withFarmer(_m))
	return &FarmerUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *FarmerClient) UpdateOneID(id uuid.UUID) *FarmerUpdateOne {
	mutation := newFarmerMutation(c.config, OpUpdateOne, withFarmerID(id))
	return &FarmerUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Farmer.
func (c *FarmerClient) Delete() *FarmerDelete {
	mutation := newFarmerMutation(c.config, OpDelete)
	return &FarmerDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *FarmerClient) DeleteOne(_m *Farmer) *FarmerDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *FarmerClient) DeleteOneID(id uuid.UUID) *FarmerDeleteOne {
	builder := c.Delete().Where(farmer.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &FarmerDeleteOne{builder}
}

// Query returns a query builder for Farmer.
func (c *FarmerClient) Query() *FarmerQuery {
	return &FarmerQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeFarmer},
		inters: c.Interceptors(),
	}
}

// Get returns a Farmer entity by its id.
func (c *FarmerClient) Get(ctx context.Context, id uuid.UUID) (*Farmer, error) {
	return c.Query().Where(farmer.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *FarmerClient) GetX(ctx context.Context, id uuid.UUID) *Farmer {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryDocuments queries the documents edge of a Farmer.
func (c *FarmerClient) QueryDocuments(_m *Farmer) *FarmerDocumentQuery {
	query := (&FarmerDocumentClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(farmer.Table, farmer.FieldID, id),
			sqlgraph.To(farmerdocument.Table, farmerdocument.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, farmer.DocumentsTable, farmer.DocumentsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryApplications queries the applications edge of a Farmer.
func (c *FarmerClient) QueryApplications(_m *Farmer) *ApplicationQuery {
	query := (&ApplicationClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(farmer.Table, farmer.FieldID, id),
			sqlgraph.To(application.Table, application.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, farmer.ApplicationsTable, farmer.ApplicationsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryNotifications queries the notifications edge of a Farmer.
func (c *FarmerClient) QueryNotifications(_m *Farmer) *NotificationQuery {
	query := (&NotificationClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(farmer.Table, farmer.FieldID, id),
			sqlgraph.To(notification.Table, notification.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, farmer.NotificationsTable, farmer.NotificationsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *FarmerClient) Hooks() []Hook {
	return c.hooks.Farmer
}

// Interceptors returns the client interceptors.
func (c *FarmerClient) Interceptors() []Interceptor {
	return c.inters.Farmer
}

func (c *FarmerClient) mutate(ctx context.Context, m *FarmerMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&FarmerCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&FarmerUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&FarmerUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&FarmerDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Farmer mutation op: %q", m.Op())
	}
}

// FarmerDocumentClient is a client for the FarmerDocument schema.
type FarmerDocumentClient struct {
	config
}

// NewFarmerDocumentClient returns a client for the FarmerDocument from the given config.
func NewFarmerDocumentClient(c config) *FarmerDocumentClient {
	return &FarmerDocumentClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `farmerdocument.Hooks(f(g(h())))`.
func (c *FarmerDocumentClient) Use(hooks ...Hook) {
	c.hooks.FarmerDocument = append(c.hooks.FarmerDocument, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `farmerdocument.Intercept(f(g(h())))`.
func (c *FarmerDocumentClient) Intercept(interceptors ...Interceptor) {
	c.inters.FarmerDocument = append(c.inters.FarmerDocument, interceptors...)
}

// Create returns a builder for creating a FarmerDocument entity.
func (c *FarmerDocumentClient) Create() *FarmerDocumentCreate {
	mutation := newFarmerDocumentMutation(c.config, OpCreate)
	return &FarmerDocumentCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of FarmerDocument entities.
func (c *FarmerDocumentClient) CreateBulk(builders ...*FarmerDocumentCreate) *FarmerDocumentCreateBulk {
	return &FarmerDocumentCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *FarmerDocumentClient) MapCreateBulk(slice any, setFunc func(*FarmerDocumentCreate, int)) *FarmerDocumentCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &FarmerDocumentCreateBulk{err: fmt.Errorf("calling to FarmerDocumentClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*FarmerDocumentCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &FarmerDocumentCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for FarmerDocument.
func (c *FarmerDocumentClient) Update() *FarmerDocumentUpdate {
	mutation := newFarmerDocumentMutation(c.config, OpUpdate)
	return &FarmerDocumentUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *FarmerDocumentClient) UpdateOne(_m *FarmerDocument) *FarmerDocumentUpdateOne {
	mutation := newFarmerDocumentMutation(c.config, OpUpdateOne, withFarmerDocument(_m))
	return &FarmerDocumentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *FarmerDocumentClient) UpdateOneID(id uuid.UUID) *FarmerDocumentUpdateOne {
	mutation := newFarmerDocumentMutation(c.config, OpUpdateOne, withFarmerDocumentID(id))
	return &FarmerDocumentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for FarmerDocument.
func (c *FarmerDocumentClient) Delete() *FarmerDocumentDelete {
	mutation := newFarmerDocumentMutation(c.config, OpDelete)
	return &FarmerDocumentDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *FarmerDocumentClient) DeleteOne(_m *FarmerDocument) *FarmerDocumentDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *FarmerDocumentClient) DeleteOneID(id uuid.UUID) *FarmerDocumentDeleteOne {
	builder := c.Delete().Where(farmerdocument.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &FarmerDocumentDeleteOne{builder}
}

// Query returns a query builder for FarmerDocument.
func (c *FarmerDocumentClient) Query() *FarmerDocumentQuery {
	return &FarmerDocumentQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeFarmerDocument},
		inters: c.Interceptors(),
	}
}

// Get returns a FarmerDocument entity by its id.
func (c *FarmerDocumentClient) Get(ctx context.Context, id uuid.UUID) (*FarmerDocument, error) {
	return c.Query().Where(farmerdocument.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *FarmerDocumentClient) GetX(ctx context.Context, id uuid.UUID) *FarmerDocument {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryFarmer queries the farmer edge of a FarmerDocument.
func (c *FarmerDocumentClient) QueryFarmer(_m *FarmerDocument) *FarmerQuery {
	query := (&FarmerClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(farmerdocument.Table, farmerdocument.FieldID, id),
			sqlgraph.To(farmer.Table, farmer.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, farmerdocument.FarmerTable, farmerdocument.FarmerColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *FarmerDocumentClient) Hooks() []Hook {
	return c.hooks.FarmerDocument
}

// Interceptors returns the client interceptors.
func (c *FarmerDocumentClient) Interceptors() []Interceptor {
	return c.inters.FarmerDocument
}

func (c *FarmerDocumentClient) mutate(ctx context.Context, m *FarmerDocumentMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&FarmerDocumentCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&FarmerDocumentUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&FarmerDocumentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&FarmerDocumentDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown FarmerDocument mutation op: %q", m.Op())
	}
}

// NotificationClient is a client for the Notification schema.
type NotificationClient struct {
	config
}

// NewNotificationClient returns a client for the Notification from the given config.
func NewNotificationClient(c config) *NotificationClient {
	return &NotificationClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `notification.Hooks(f(g(h())))`.
func (c *NotificationClient) Use(hooks ...Hook) {
	c.hooks.Notification = append(c.hooks.Notification, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `notification.Intercept(f(g(h())))`.
func (c *NotificationClient) Intercept(interceptors ...Interceptor) {
	c.inters.Notification = append(c.inters.Notification, interceptors...)
}

// Create returns a builder for creating a Notification entity.
func (c *NotificationClient) Create() *NotificationCreate {
	mutation := newNotificationMutation(c.config, OpCreate)
	return &NotificationCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Notification entities.
func (c *NotificationClient) CreateBulk(builders ...*NotificationCreate) *NotificationCreateBulk {
	return &NotificationCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *NotificationClient) MapCreateBulk(slice any, setFunc func(*NotificationCreate, int)) *NotificationCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &NotificationCreateBulk{err: fmt.Errorf("calling to NotificationClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*NotificationCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &NotificationCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Notification.
func (c *NotificationClient) Update() *NotificationUpdate {
	mutation := newNotificationMutation(c.config, OpUpdate)
	return &NotificationUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *NotificationClient) UpdateOne(_m *Notification) *NotificationUpdateOne {
	mutation := newNotificationMutation(c.config, OpUpdateOne, withNotification(_m))
	return &NotificationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *NotificationClient) UpdateOneID(id uuid.UUID) *NotificationUpdateOne {
	mutation := newNotificationMutation(c.config, OpUpdateOne, withNotificationID(id))
	return &NotificationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Notification.
func (c *NotificationClient) Delete() *NotificationDelete {
	mutation := newNotificationMutation(c.config, OpDelete)
	return &NotificationDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *NotificationClient) DeleteOne(_m *Notification) *NotificationDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *NotificationClient) DeleteOneID(id uuid.UUID) *NotificationDeleteOne {
	builder := c.Delete().Where(notification.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &NotificationDeleteOne{builder}
}

// Query returns a query builder for Notification.
func (c *NotificationClient) Query() *NotificationQuery {
	return &NotificationQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeNotification},
		inters: c.Interceptors(),
	}
}

// Get returns a Notification entity by its id.
func (c *NotificationClient) Get(ctx context.Context, id uuid.UUID) (*Notification, error) {
	return c.Query().Where(notification.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *NotificationClient) GetX(ctx context.Context, id uuid.UUID) *Notification {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryFarmer queries the farmer edge of a Notification.
func (c *NotificationClient) QueryFarmer(_m *Notification) *FarmerQuery {
	query := (&FarmerClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(notification.Table, notification.FieldID, id),
			sqlgraph.To(farmer.Table, farmer.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, notification.FarmerTable, notification.FarmerColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *NotificationClient) Hooks() []Hook {
	return c.hooks.Notification
}

// Interceptors returns the client interceptors.
func (c *NotificationClient) Interceptors() []Interceptor {
	return c.inters.Notification
}

func (c *NotificationClient) mutate(ctx context.Context, m *NotificationMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&NotificationCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&NotificationUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&NotificationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&NotificationDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Notification mutation op: %q", m.Op())
	}
}

// SchemeClient is a client for the Scheme schema.
type SchemeClient struct {
	config
}

// NewSchemeClient returns a client for the Scheme from the given config.
func NewSchemeClient(c config) *SchemeClient {
	return &SchemeClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `scheme.Hooks(f(g(h())))`.
func (c *SchemeClient) Use(hooks ...Hook) {
	c.hooks.Scheme = append(c.hooks.Scheme, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `scheme.Intercept(f(g(h())))`.
func (c *SchemeClient) Intercept(interceptors ...Interceptor) {
	c.inters.Scheme = append(c.inters.Scheme, interceptors...)
}

// Create returns a builder for creating a Scheme entity.
func (c *SchemeClient) Create() *SchemeCreate {
	mutation := newSchemeMutation(c.config, OpCreate)
	return &SchemeCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Scheme entities.
func (c *SchemeClient) CreateBulk(builders ...*SchemeCreate) *SchemeCreateBulk {
	return &SchemeCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SchemeClient) MapCreateBulk(slice any, setFunc func(*SchemeCreate, int)) *SchemeCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SchemeCreateBulk{err: fmt.Errorf("calling to SchemeClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SchemeCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SchemeCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Scheme.
func (c *SchemeClient) Update() *SchemeUpdate {
	mutation := newSchemeMutation(c.config, OpUpdate)
	return &SchemeUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SchemeClient) UpdateOne(_m *Scheme) *SchemeUpdateOne {
	mutation := newSchemeMutation(c.config, OpUpdateOne, withScheme(_m))
	return &SchemeUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SchemeClient) UpdateOneID(id uuid.UUID) *SchemeUpdateOne {
	mutation := newSchemeMutation(c.config, OpUpdateOne, withSchemeID(id))
	return &SchemeUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Scheme.
func (c *SchemeClient) Delete() *SchemeDelete {
	mutation := newSchemeMutation(c.config, OpDelete)
	return &SchemeDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SchemeClient) DeleteOne(_m *Scheme) *SchemeDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SchemeClient) DeleteOneID(id uuid.UUID) *SchemeDeleteOne {
	builder := c.Delete().Where(scheme.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SchemeDeleteOne{builder}
}

// Query returns a query builder for Scheme.
func (c *SchemeClient) Query() *SchemeQuery {
	return &SchemeQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeScheme},
		inters: c.Interceptors(),
	}
}

// Get returns a Scheme entity by its id.
func (c *SchemeClient) Get(ctx context.Context, id uuid.UUID) (*Scheme, error) {
	return c.Query().Where(scheme.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SchemeClient) GetX(ctx context.Context, id uuid.UUID) *Scheme {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryApplications queries the applications edge of a Scheme.
func (c *SchemeClient) QueryApplications(_m *Scheme) *ApplicationQuery {
	query := (&ApplicationClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(scheme.Table, scheme.FieldID, id),
			sqlgraph.To(application.Table, application.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, scheme.ApplicationsTable, scheme.ApplicationsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *SchemeClient) Hooks() []Hook {
	return c.hooks.Scheme
}

// Interceptors returns the client interceptors.
func (c *SchemeClient) Interceptors() []Interceptor {
	return c.inters.Scheme
}

func (c *SchemeClient) mutate(ctx context.Context, m *SchemeMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SchemeCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SchemeUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SchemeUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SchemeDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Scheme mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		Application, Farmer, FarmerDocument, Notification, Scheme []ent.Hook
	}
	inters struct {
		Application, Farmer, FarmerDocument, Notification, Scheme []ent.Interceptor
	}
)
