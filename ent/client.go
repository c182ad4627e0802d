// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"portfolio-api/ent/migrate"

	"portfolio-api/ent/certificate"
	"portfolio-api/ent/chatbotsetting"
	"portfolio-api/ent/contactmessage"
	"portfolio-api/ent/customform"
	"portfolio-api/ent/iconvariant"
	"portfolio-api/ent/seoentry"
	"portfolio-api/ent/task"
	"portfolio-api/ent/techdetail"
	"portfolio-api/ent/techicon"
	"portfolio-api/ent/technology"
	"portfolio-api/ent/user"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// Certificate is the client for interacting with the Certificate builders.
	Certificate *CertificateClient
	// ChatbotSetting is the client for interacting with the ChatbotSetting builders.
	ChatbotSetting *ChatbotSettingClient
	// ContactMessage is the client for interacting with the ContactMessage builders.
	ContactMessage *ContactMessageClient
	// CustomForm is the client for interacting with the CustomForm builders.
	CustomForm *CustomFormClient
	// IconVariant is the client for interacting with the IconVariant builders.
	IconVariant *IconVariantClient
	// SeoEntry is the client for interacting with the SeoEntry builders.
	SeoEntry *SeoEntryClient
	// Task is the client for interacting with the Task builders.
	Task *TaskClient
	// TechDetail is the client for interacting with the TechDetail builders.
	TechDetail *TechDetailClient
	// TechIcon is the client for interacting with the TechIcon builders.
	TechIcon *TechIconClient
	// Technology is the client for interacting with the Technology builders.
	Technology *TechnologyClient
	// User is the client for interacting with the User builders.
	User *UserClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.Certificate = NewCertificateClient(c.config)
	c.ChatbotSetting = NewChatbotSettingClient(c.config)
	c.ContactMessage = NewContactMessageClient(c.config)
	c.CustomForm = NewCustomFormClient(c.config)
	c.IconVariant = NewIconVariantClient(c.config)
	c.SeoEntry = NewSeoEntryClient(c.config)
	c.Task = NewTaskClient(c.config)
	c.TechDetail = NewTechDetailClient(c.config)
	c.TechIcon = NewTechIconClient(c.config)
	c.Technology = NewTechnologyClient(c.config)
	c.User = NewUserClient(c.config)
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
		Certificate:    NewCertificateClient(cfg),
		ChatbotSetting: NewChatbotSettingClient(cfg),
		ContactMessage: NewContactMessageClient(cfg),
		CustomForm:     NewCustomFormClient(cfg),
		IconVariant:    NewIconVariantClient(cfg),
		SeoEntry:       NewSeoEntryClient(cfg),
		Task:           NewTaskClient(cfg),
		TechDetail:     NewTechDetailClient(cfg),
		TechIcon:       NewTechIconClient(cfg),
		Technology:     NewTechnologyClient(cfg),
		User:           NewUserClient(cfg),
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
		Certificate:    NewCertificateClient(cfg),
		ChatbotSetting: NewChatbotSettingClient(cfg),
		ContactMessage: NewContactMessageClient(cfg),
		CustomForm:     NewCustomFormClient(cfg),
		IconVariant:    NewIconVariantClient(cfg),
		SeoEntry:       NewSeoEntryClient(cfg),
		Task:           NewTaskClient(cfg),
		TechDetail:     NewTechDetailClient(cfg),
		TechIcon:       NewTechIconClient(cfg),
		Technology:     NewTechnologyClient(cfg),
		User:           NewUserClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		Certificate.
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
	for _, n := range []interface{ Use(...Hook) }{
		c.Certificate, c.ChatbotSetting, c.ContactMessage, c.CustomForm, c.IconVariant,
		c.SeoEntry, c.Task, c.TechDetail, c.TechIcon, c.Technology, c.User,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.Certificate, c.ChatbotSetting, c.ContactMessage, c.CustomForm, c.IconVariant,
		c.SeoEntry, c.Task, c.TechDetail, c.TechIcon, c.Technology, c.User,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *CertificateMutation:
		return c.Certificate.mutate(ctx, m)
	case *ChatbotSettingMutation:
		return c.ChatbotSetting.mutate(ctx, m)
	case *ContactMessageMutation:
		return c.ContactMessage.mutate(ctx, m)
	case *CustomFormMutation:
		return c.CustomForm.mutate(ctx, m)
	case *IconVariantMutation:
		return c.IconVariant.mutate(ctx, m)
	case *SeoEntryMutation:
		return c.SeoEntry.mutate(ctx, m)
	case *TaskMutation:
		return c.Task.mutate(ctx, m)
	case *TechDetailMutation:
		return c.TechDetail.mutate(ctx, m)
	case *TechIconMutation:
		return c.TechIcon.mutate(ctx, m)
	case *TechnologyMutation:
		return c.Technology.mutate(ctx, m)
	case *UserMutation:
		return c.User.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// CertificateClient is a client for the Certificate schema.
type CertificateClient struct {
	config
}

// NewCertificateClient returns a client for the Certificate from the given config.
func NewCertificateClient(c config) *CertificateClient {
	return &CertificateClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `certificate.Hooks(f(g(h())))`.
func (c *CertificateClient) Use(hooks ...Hook) {
	c.hooks.Certificate = append(c.hooks.Certificate, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `certificate.Intercept(f(g(h())))`.
func (c *CertificateClient) Intercept(interceptors ...Interceptor) {
	c.inters.Certificate = append(c.inters.Certificate, interceptors...)
}

// Create returns a builder for creating a Certificate entity.
func (c *CertificateClient) Create() *CertificateCreate {
	mutation := newCertificateMutation(c.config, OpCreate)
	return &CertificateCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Certificate entities.
func (c *CertificateClient) CreateBulk(builders ...*CertificateCreate) *CertificateCreateBulk {
	return &CertificateCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *CertificateClient) MapCreateBulk(slice any, setFunc func(*CertificateCreate, int)) *CertificateCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &CertificateCreateBulk{err: fmt.Errorf("calling to CertificateClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*CertificateCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &CertificateCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Certificate.
func (c *CertificateClient) Update() *CertificateUpdate {
	mutation := newCertificateMutation(c.config, OpUpdate)
	return &CertificateUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *CertificateClient) UpdateOne(_m *Certificate) *CertificateUpdateOne {
	mutation := newCertificateMutation(c.config, OpUpdateOne, withCertificate(_m))
	return &CertificateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *CertificateClient) UpdateOneID(id uuid.UUID) *CertificateUpdateOne {
	mutation := newCertificateMutation(c.config, OpUpdateOne, withCertificateID(id))
	return &CertificateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Certificate.
func (c *CertificateClient) Delete() *CertificateDelete {
	mutation := newCertificateMutation(c.config, OpDelete)
	return &CertificateDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *CertificateClient) DeleteOne(_m *Certificate) *CertificateDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *CertificateClient) DeleteOneID(id uuid.UUID) *CertificateDeleteOne {
	builder := c.Delete().Where(certificate.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &CertificateDeleteOne{builder}
}

// Query returns a query builder for Certificate.
func (c *CertificateClient) Query() *CertificateQuery {
	return &CertificateQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeCertificate},
		inters: c.Interceptors(),
	}
}

// Get returns a Certificate entity by its id.
func (c *CertificateClient) Get(ctx context.Context, id uuid.UUID) (*Certificate, error) {
	return c.Query().Where(certificate.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *CertificateClient) GetX(ctx context.Context, id uuid.UUID) *Certificate {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *CertificateClient) Hooks() []Hook {
	return c.hooks.Certificate
}

// Interceptors returns the client interceptors.
func (c *CertificateClient) Interceptors() []Interceptor {
	return c.inters.Certificate
}

func (c *CertificateClient) mutate(ctx context.Context, m *CertificateMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&CertificateCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&CertificateUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&CertificateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&CertificateDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Certificate mutation op: %q", m.Op())
	}
}

// ChatbotSettingClient is a client for the ChatbotSetting schema.
type ChatbotSettingClient struct {
	config
}

// NewChatbotSettingClient returns a client for the ChatbotSetting from the given config.
func NewChatbotSettingClient(c config) *ChatbotSettingClient {
	return &ChatbotSettingClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `chatbotsetting.Hooks(f(g(h())))`.
func (c *ChatbotSettingClient) Use(hooks ...Hook) {
	c.hooks.ChatbotSetting = append(c.hooks.ChatbotSetting, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `chatbotsetting.Intercept(f(g(h())))`.
func (c *ChatbotSettingClient) Intercept(interceptors ...Interceptor) {
	c.inters.ChatbotSetting = append(c.inters.ChatbotSetting, interceptors...)
}

// Create returns a builder for creating a ChatbotSetting entity.
func (c *ChatbotSettingClient) Create() *ChatbotSettingCreate {
	mutation := newChatbotSettingMutation(c.config, OpCreate)
	return &ChatbotSettingCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ChatbotSetting entities.
func (c *ChatbotSettingClient) CreateBulk(builders ...*ChatbotSettingCreate) *ChatbotSettingCreateBulk {
	return &ChatbotSettingCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ChatbotSettingClient) MapCreateBulk(slice any, setFunc func(*ChatbotSettingCreate, int)) *ChatbotSettingCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ChatbotSettingCreateBulk{err: fmt.Errorf("calling to ChatbotSettingClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ChatbotSettingCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ChatbotSettingCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ChatbotSetting.
func (c *ChatbotSettingClient) Update() *ChatbotSettingUpdate {
	mutation := newChatbotSettingMutation(c.config, OpUpdate)
	return &ChatbotSettingUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ChatbotSettingClient) UpdateOne(_m *ChatbotSetting) *ChatbotSettingUpdateOne {
	mutation := newChatbotSettingMutation(c.config, OpUpdateOne, withChatbotSetting(_m))
	return &ChatbotSettingUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ChatbotSettingClient) UpdateOneID(id uuid.UUID) *ChatbotSettingUpdateOne {
	mutation := newChatbotSettingMutation(c.config, OpUpdateOne, withChatbotSettingID(id))
	return &ChatbotSettingUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ChatbotSetting.
func (c *ChatbotSettingClient) Delete() *ChatbotSettingDelete {
	mutation := newChatbotSettingMutation(c.config, OpDelete)
	return &ChatbotSettingDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ChatbotSettingClient) DeleteOne(_m *ChatbotSetting) *ChatbotSettingDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ChatbotSettingClient) DeleteOneID(id uuid.UUID) *ChatbotSettingDeleteOne {
	builder := c.Delete().Where(chatbotsetting.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ChatbotSettingDeleteOne{builder}
}

// Query returns a query builder for ChatbotSetting.
func (c *ChatbotSettingClient) Query() *ChatbotSettingQuery {
	return &ChatbotSettingQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeChatbotSetting},
		inters: c.Interceptors(),
	}
}

// Get returns a ChatbotSetting entity by its id.
func (c *ChatbotSettingClient) Get(ctx context.Context, id uuid.UUID) (*ChatbotSetting, error) {
	return c.Query().Where(chatbotsetting.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ChatbotSettingClient) GetX(ctx context.Context, id uuid.UUID) *ChatbotSetting {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ChatbotSettingClient) Hooks() []Hook {
	return c.hooks.ChatbotSetting
}

// Interceptors returns the client interceptors.
func (c *ChatbotSettingClient) Interceptors() []Interceptor {
	return c.inters.ChatbotSetting
}

func (c *ChatbotSettingClient) mutate(ctx context.Context, m *ChatbotSettingMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ChatbotSettingCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ChatbotSettingUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ChatbotSettingUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ChatbotSettingDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ChatbotSetting mutation op: %q", m.Op())
	}
}

// ContactMessageClient is a client for the ContactMessage schema.
type ContactMessageClient struct {
	config
}

// NewContactMessageClient returns a client for the ContactMessage from the given config.
func NewContactMessageClient(c config) *ContactMessageClient {
	return &ContactMessageClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `contactmessage.Hooks(f(g(h())))`.
func (c *ContactMessageClient) Use(hooks ...Hook) {
	c.hooks.ContactMessage = append(c.hooks.ContactMessage, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `contactmessage.Intercept(f(g(h())))`.
func (c *ContactMessageClient) Intercept(interceptors ...Interceptor) {
	c.inters.ContactMessage = append(c.inters.ContactMessage, interceptors...)
}

// Create returns a builder for creating a ContactMessage entity.
func (c *ContactMessageClient) Create() *ContactMessageCreate {
	mutation := newContactMessageMutation(c.config, OpCreate)
	return &ContactMessageCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ContactMessage entities.
func (c *ContactMessageClient) CreateBulk(builders ...*ContactMessageCreate) *ContactMessageCreateBulk {
	return &ContactMessageCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ContactMessageClient) MapCreateBulk(slice any, setFunc func(*ContactMessageCreate, int)) *ContactMessageCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ContactMessageCreateBulk{err: fmt.Errorf("calling to ContactMessageClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ContactMessageCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ContactMessageCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ContactMessage.
func (c *ContactMessageClient) Update() *ContactMessageUpdate {
	mutation := newContactMessageMutation(c.config, OpUpdate)
	return &ContactMessageUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ContactMessageClient) UpdateOne(_m *ContactMessage) *ContactMessageUpdateOne {
	mutation := newContactMessageMutation(c.config, OpUpdateOne, withContactMessage(_m))
	return &ContactMessageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ContactMessageClient) UpdateOneID(id uuid.UUID) *ContactMessageUpdateOne {
	mutation := newContactMessageMutation(c.config, OpUpdateOne, withContactMessageID(id))
	return &ContactMessageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ContactMessage.
func (c *ContactMessageClient) Delete() *ContactMessageDelete {
	mutation := newContactMessageMutation(c.config, OpDelete)
	return &ContactMessageDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ContactMessageClient) DeleteOne(_m *ContactMessage) *ContactMessageDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ContactMessageClient) DeleteOneID(id uuid.UUID) *ContactMessageDeleteOne {
	builder := c.Delete().Where(contactmessage.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ContactMessageDeleteOne{builder}
}

// Query returns a query builder for ContactMessage.
func (c *ContactMessageClient) Query() *ContactMessageQuery {
	return &ContactMessageQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeContactMessage},
		inters: c.Interceptors(),
	}
}

// Get returns a ContactMessage entity by its id.
func (c *ContactMessageClient) Get(ctx context.Context, id uuid.UUID) (*ContactMessage, error) {
	return c.Query().Where(contactmessage.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ContactMessageClient) GetX(ctx context.Context, id uuid.UUID) *ContactMessage {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ContactMessageClient) Hooks() []Hook {
	return c.hooks.ContactMessage
}

// Interceptors returns the client interceptors.
func (c *ContactMessageClient) Interceptors() []Interceptor {
	return c.inters.ContactMessage
}

func (c *ContactMessageClient) mutate(ctx context.Context, m *ContactMessageMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ContactMessageCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ContactMessageUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ContactMessageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ContactMessageDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ContactMessage mutation op: %q", m.Op())
	}
}

// CustomFormClient is a client for the CustomForm schema.
type CustomFormClient struct {
	config
}

// NewCustomFormClient returns a client for the CustomForm from the given config.
func NewCustomFormClient(c config) *CustomFormClient {
	return &CustomFormClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `customform.Hooks(f(g(h())))`.
func (c *CustomFormClient) Use(hooks ...Hook) {
	c.hooks.CustomForm = append(c.hooks.CustomForm, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `customform.Intercept(f(g(h())))`.
func (c *CustomFormClient) Intercept(interceptors ...Interceptor) {
	c.inters.CustomForm = append(c.inters.CustomForm, interceptors...)
}

// Create returns a builder for creating a CustomForm entity.
func (c *CustomFormClient) Create() *CustomFormCreate {
	mutation := newCustomFormMutation(c.config, OpCreate)
	return &CustomFormCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of CustomForm entities.
func (c *CustomFormClient) CreateBulk(builders ...*CustomFormCreate) *CustomFormCreateBulk {
	return &CustomFormCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *CustomFormClient) MapCreateBulk(slice any, setFunc func(*CustomFormCreate, int)) *CustomFormCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &CustomFormCreateBulk{err: fmt.Errorf("calling to CustomFormClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*CustomFormCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &CustomFormCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for CustomForm.
func (c *CustomFormClient) Update() *CustomFormUpdate {
	mutation := newCustomFormMutation(c.config, OpUpdate)
	return &CustomFormUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *CustomFormClient) UpdateOne(_m *CustomForm) *CustomFormUpdateOne {
	mutation := newCustomFormMutation(c.config, OpUpdateOne, withCustomForm(_m))
	return &CustomFormUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *CustomFormClient) UpdateOneID(id uuid.UUID) *CustomFormUpdateOne {
	mutation := newCustomFormMutation(c.config, OpUpdateOne, withCustomFormID(id))
	return &CustomFormUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for CustomForm.
func (c *CustomFormClient) Delete() *CustomFormDelete {
	mutation := newCustomFormMutation(c.config, OpDelete)
	return &CustomFormDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *CustomFormClient) DeleteOne(_m *CustomForm) *CustomFormDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *CustomFormClient) DeleteOneID(id uuid.UUID) *CustomFormDeleteOne {
	builder := c.Delete().Where(customform.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &CustomFormDeleteOne{builder}
}

// Query returns a query builder for CustomForm.
func (c *CustomFormClient) Query() *CustomFormQuery {
	return &CustomFormQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeCustomForm},
		inters: c.Interceptors(),
	}
}

// Get returns a CustomForm entity by its id.
func (c *CustomFormClient) Get(ctx context.Context, id uuid.UUID) (*CustomForm, error) {
	return c.Query().Where(customform.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *CustomFormClient) GetX(ctx context.Context, id uuid.UUID) *CustomForm {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *CustomFormClient) Hooks() []Hook {
	return c.hooks.CustomForm
}

// Interceptors returns the client interceptors.
func (c *CustomFormClient) Interceptors() []Interceptor {
	return c.inters.CustomForm
}

func (c *CustomFormClient) mutate(ctx context.Context, m *CustomFormMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&CustomFormCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&CustomFormUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&CustomFormUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&CustomFormDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown CustomForm mutation op: %q", m.Op())
	}
}

// IconVariantClient is a client for the IconVariant schema.
type IconVariantClient struct {
	config
}

// NewIconVariantClient returns a client for the IconVariant from the given config.
func NewIconVariantClient(c config) *IconVariantClient {
	return &IconVariantClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `iconvariant.Hooks(f(g(h())))`.
func (c *IconVariantClient) Use(hooks ...Hook) {
	c.hooks.IconVariant = append(c.hooks.IconVariant, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `iconvariant.Intercept(f(g(h())))`.
func (c *IconVariantClient) Intercept(interceptors ...Interceptor) {
	c.inters.IconVariant = append(c.inters.IconVariant, interceptors...)
}

// Create returns a builder for creating a IconVariant entity.
func (c *IconVariantClient) Create() *IconVariantCreate {
	mutation := newIconVariantMutation(c.config, OpCreate)
	return &IconVariantCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of IconVariant entities.
func (c *IconVariantClient) CreateBulk(builders ...*IconVariantCreate) *IconVariantCreateBulk {
	return &IconVariantCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *IconVariantClient) MapCreateBulk(slice any, setFunc func(*IconVariantCreate, int)) *IconVariantCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &IconVariantCreateBulk{err: fmt.Errorf("calling to IconVariantClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*IconVariantCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &IconVariantCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for IconVariant.
func (c *IconVariantClient) Update() *IconVariantUpdate {
	mutation := newIconVariantMutation(c.config, OpUpdate)
	return &IconVariantUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *IconVariantClient) UpdateOne(_m *IconVariant) *IconVariantUpdateOne {
	mutation := newIconVariantMutation(c.config, OpUpdateOne, withIconVariant(_m))
	return &IconVariantUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *IconVariantClient) UpdateOneID(id uuid.UUID) *IconVariantUpdateOne {
	mutation := newIconVariantMutation(c.config, OpUpdateOne, withIconVariantID(id))
	return &IconVariantUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for IconVariant.
func (c *IconVariantClient) Delete() *IconVariantDelete {
	mutation := newIconVariantMutation(c.config, OpDelete)
	return &IconVariantDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *IconVariantClient) DeleteOne(_m *IconVariant) *IconVariantDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *IconVariantClient) DeleteOneID(id uuid.UUID) *IconVariantDeleteOne {
	builder := c.Delete().Where(iconvariant.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &IconVariantDeleteOne{builder}
}

// Query returns a query builder for IconVariant.
func (c *IconVariantClient) Query() *IconVariantQuery {
	return &IconVariantQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeIconVariant},
		inters: c.Interceptors(),
	}
}

// Get returns a IconVariant entity by its id.
func (c *IconVariantClient) Get(ctx context.Context, id uuid.UUID) (*IconVariant, error) {
	return c.Query().Where(iconvariant.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *IconVariantClient) GetX(ctx context.Context, id uuid.UUID) *IconVariant {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *IconVariantClient) Hooks() []Hook {
	return c.hooks.IconVariant
}

// Interceptors returns the client interceptors.
func (c *IconVariantClient) Interceptors() []Interceptor {
	return c.inters.IconVariant
}

func (c *IconVariantClient) mutate(ctx context.Context, m *IconVariantMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&IconVariantCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&IconVariantUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&IconVariantUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&IconVariantDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown IconVariant mutation op: %q", m.Op())
	}
}

// SeoEntryClient is a client for the SeoEntry schema.
type SeoEntryClient struct {
	config
}

// NewSeoEntryClient returns a client for the SeoEntry from the given config.
func NewSeoEntryClient(c config) *SeoEntryClient {
	return &SeoEntryClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `seoentry.Hooks(f(g(h())))`.
func (c *SeoEntryClient) Use(hooks ...Hook) {
	c.hooks.SeoEntry = append(c.hooks.SeoEntry, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `seoentry.Intercept(f(g(h())))`.
func (c *SeoEntryClient) Intercept(interceptors ...Interceptor) {
	c.inters.SeoEntry = append(c.inters.SeoEntry, interceptors...)
}

// Create returns a builder for creating a SeoEntry entity.
func (c *SeoEntryClient) Create() *SeoEntryCreate {
	mutation := newSeoEntryMutation(c.config, OpCreate)
	return &SeoEntryCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of SeoEntry entities.
func (c *SeoEntryClient) CreateBulk(builders ...*SeoEntryCreate) *SeoEntryCreateBulk {
	return &SeoEntryCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SeoEntryClient) MapCreateBulk(slice any, setFunc func(*SeoEntryCreate, int)) *SeoEntryCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SeoEntryCreateBulk{err: fmt.Errorf("calling to SeoEntryClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SeoEntryCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SeoEntryCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for SeoEntry.
func (c *SeoEntryClient) Update() *SeoEntryUpdate {
	mutation := newSeoEntryMutation(c.config, OpUpdate)
	return &SeoEntryUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SeoEntryClient) UpdateOne(_m *SeoEntry) *SeoEntryUpdateOne {
	mutation := newSeoEntryMutation(c.config, OpUpdateOne, withSeoEntry(_m))
	return &SeoEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SeoEntryClient) UpdateOneID(id uuid.UUID) *SeoEntryUpdateOne {
	mutation := newSeoEntryMutation(c.config, OpUpdateOne, withSeoEntryID(id))
	return &SeoEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for SeoEntry.
func (c *SeoEntryClient) Delete() *SeoEntryDelete {
	mutation := newSeoEntryMutation(c.config, OpDelete)
	return &SeoEntryDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SeoEntryClient) DeleteOne(_m *SeoEntry) *SeoEntryDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SeoEntryClient) DeleteOneID(id uuid.UUID) *SeoEntryDeleteOne {
	builder := c.Delete().Where(seoentry.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SeoEntryDeleteOne{builder}
}

// Query returns a query builder for SeoEntry.
func (c *SeoEntryClient) Query() *SeoEntryQuery {
	return &SeoEntryQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSeoEntry},
		inters: c.Interceptors(),
	}
}

// Get returns a SeoEntry entity by its id.
func (c *SeoEntryClient) Get(ctx context.Context, id uuid.UUID) (*SeoEntry, error) {
	return c.Query().Where(seoentry.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SeoEntryClient) GetX(ctx context.Context, id uuid.UUID) *SeoEntry {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *SeoEntryClient) Hooks() []Hook {
	return c.hooks.SeoEntry
}

// Interceptors returns the client interceptors.
func (c *SeoEntryClient) Interceptors() []Interceptor {
	return c.inters.SeoEntry
}

func (c *SeoEntryClient) mutate(ctx context.Context, m *SeoEntryMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SeoEntryCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SeoEntryUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SeoEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SeoEntryDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown SeoEntry mutation op: %q", m.Op())
	}
}

// TaskClient is a client for the Task schema.
type TaskClient struct {
	config
}

// NewTaskClient returns a client for the Task from the given config.
func NewTaskClient(c config) *TaskClient {
	return &TaskClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `task.Hooks(f(g(h())))`.
func (c *TaskClient) Use(hooks ...Hook) {
	c.hooks.Task = append(c.hooks.Task, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `task.Intercept(f(g(h())))`.
func (c *TaskClient) Intercept(interceptors ...Interceptor) {
	c.inters.Task = append(c.inters.Task, interceptors...)
}

// Create returns a builder for creating a Task entity.
func (c *TaskClient) Create() *TaskCreate {
	mutation := newTaskMutation(c.config, OpCreate)
	return &TaskCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Task entities.
func (c *TaskClient) CreateBulk(builders ...*TaskCreate) *TaskCreateBulk {
	return &TaskCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TaskClient) MapCreateBulk(slice any, setFunc func(*TaskCreate, int)) *TaskCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TaskCreateBulk{err: fmt.Errorf("calling to TaskClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TaskCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TaskCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Task.
func (c *TaskClient) Update() *TaskUpdate {
	mutation := newTaskMutation(c.config, OpUpdate)
	return &TaskUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TaskClient) UpdateOne(_m *Task) *TaskUpdateOne {
	mutation := newTaskMutation(c.config, OpUpdateOne, withTask(_m))
	return &TaskUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TaskClient) UpdateOneID(id uuid.UUID) *TaskUpdateOne {
	mutation := newTaskMutation(c.config, OpUpdateOne, withTaskID(id))
	return &TaskUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Task.
func (c *TaskClient) Delete() *TaskDelete {
	mutation := newTaskMutation(c.config, OpDelete)
	return &TaskDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TaskClient) DeleteOne(_m *Task) *TaskDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TaskClient) DeleteOneID(id uuid.UUID) *TaskDeleteOne {
	builder := c.Delete().Where(task.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TaskDeleteOne{builder}
}

// Query returns a query builder for Task.
func (c *TaskClient) Query() *TaskQuery {
	return &TaskQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTask},
		inters: c.Interceptors(),
	}
}

// Get returns a Task entity by its id.
func (c *TaskClient) Get(ctx context.Context, id uuid.UUID) (*Task, error) {
	return c.Query().Where(task.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TaskClient) GetX(ctx context.Context, id uuid.UUID) *Task {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *TaskClient) Hooks() []Hook {
	return c.hooks.Task
}

// Interceptors returns the client interceptors.
func (c *TaskClient) Interceptors() []Interceptor {
	return c.inters.Task
}

func (c *TaskClient) mutate(ctx context.Context, m *TaskMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TaskCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TaskUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TaskUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TaskDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Task mutation op: %q", m.Op())
	}
}

// TechDetailClient is a client for the TechDetail schema.
type TechDetailClient struct {
	config
}

// NewTechDetailClient returns a client for the TechDetail from the given config.
func NewTechDetailClient(c config) *TechDetailClient {
	return &TechDetailClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `techdetail.Hooks(f(g(h())))`.
func (c *TechDetailClient) Use(hooks ...Hook) {
	c.hooks.TechDetail = append(c.hooks.TechDetail, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `techdetail.Intercept(f(g(h())))`.
func (c *TechDetailClient) Intercept(interceptors ...Interceptor) {
	c.inters.TechDetail = append(c.inters.TechDetail, interceptors...)
}

// Create returns a builder for creating a TechDetail entity.
func (c *TechDetailClient) Create() *TechDetailCreate {
	mutation := newTechDetailMutation(c.config, OpCreate)
	return &TechDetailCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of TechDetail entities.
func (c *TechDetailClient) CreateBulk(builders ...*TechDetailCreate) *TechDetailCreateBulk {
	return &TechDetailCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TechDetailClient) MapCreateBulk(slice any, setFunc func(*TechDetailCreate, int)) *TechDetailCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TechDetailCreateBulk{err: fmt.Errorf("calling to TechDetailClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TechDetailCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TechDetailCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for TechDetail.
func (c *TechDetailClient) Update() *TechDetailUpdate {
	mutation := newTechDetailMutation(c.config, OpUpdate)
	return &TechDetailUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TechDetailClient) UpdateOne(_m *TechDetail) *TechDetailUpdateOne {
	mutation := newTechDetailMutation(c.config, OpUpdateOne, withTechDetail(_m))
	return &TechDetailUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TechDetailClient) UpdateOneID(id uuid.UUID) *TechDetailUpdateOne {
	mutation := newTechDetailMutation(c.config, OpUpdateOne, withTechDetailID(id))
	return &TechDetailUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for TechDetail.
func (c *TechDetailClient) Delete() *TechDetailDelete {
	mutation := newTechDetailMutation(c.config, OpDelete)
	return &TechDetailDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TechDetailClient) DeleteOne(_m *TechDetail) *TechDetailDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TechDetailClient) DeleteOneID(id uuid.UUID) *TechDetailDeleteOne {
	builder := c.Delete().Where(techdetail.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TechDetailDeleteOne{builder}
}

// Query returns a query builder for TechDetail.
func (c *TechDetailClient) Query() *TechDetailQuery {
	return &TechDetailQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTechDetail},
		inters: c.Interceptors(),
	}
}

// Get returns a TechDetail entity by its id.
func (c *TechDetailClient) Get(ctx context.Context, id uuid.UUID) (*TechDetail, error) {
	return c.Query().Where(techdetail.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TechDetailClient) GetX(ctx context.Context, id uuid.UUID) *TechDetail {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryTechnology queries the technology edge of a TechDetail.
func (c *TechDetailClient) QueryTechnology(_m *TechDetail) *TechnologyQuery {
	query := (&TechnologyClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(techdetail.Table, techdetail.FieldID, id),
			sqlgraph.To(technology.Table, technology.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, techdetail.TechnologyTable, techdetail.TechnologyColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *TechDetailClient) Hooks() []Hook {
	return c.hooks.TechDetail
}

// Interceptors returns the client interceptors.
func (c *TechDetailClient) Interceptors() []Interceptor {
	return c.inters.TechDetail
}

func (c *TechDetailClient) mutate(ctx context.Context, m *TechDetailMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TechDetailCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TechDetailUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TechDetailUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TechDetailDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown TechDetail mutation op: %q", m.Op())
	}
}

// TechIconClient is a client for the TechIcon schema.
type TechIconClient struct {
	config
}

// NewTechIconClient returns a client for the TechIcon from the given config.
func NewTechIconClient(c config) *TechIconClient {
	return &TechIconClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `techicon.Hooks(f(g(h())))`.
func (c *TechIconClient) Use(hooks ...Hook) {
	c.hooks.TechIcon = append(c.hooks.TechIcon, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `techicon.Intercept(f(g(h())))`.
func (c *TechIconClient) Intercept(interceptors ...Interceptor) {
	c.inters.TechIcon = append(c.inters.TechIcon, interceptors...)
}

// Create returns a builder for creating a TechIcon entity.
func (c *TechIconClient) Create() *TechIconCreate {
	mutation := newTechIconMutation(c.config, OpCreate)
	return &TechIconCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of TechIcon entities.
func (c *TechIconClient) CreateBulk(builders ...*TechIconCreate) *TechIconCreateBulk {
	return &TechIconCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TechIconClient) MapCreateBulk(slice any, setFunc func(*TechIconCreate, int)) *TechIconCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TechIconCreateBulk{err: fmt.Errorf("calling to TechIconClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TechIconCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TechIconCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for TechIcon.
func (c *TechIconClient) Update() *TechIconUpdate {
	mutation := newTechIconMutation(c.config, OpUpdate)
	return &TechIconUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TechIconClient) UpdateOne(_m *TechIcon) *TechIconUpdateOne {
	mutation := newTechIconMutation(c.config, OpUpdateOne, withTechIcon(_m))
	return &TechIconUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TechIconClient) UpdateOneID(id uuid.UUID) *TechIconUpdateOne {
	mutation := newTechIconMutation(c.config, OpUpdateOne, withTechIconID(id))
	return &TechIconUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for TechIcon.
func (c *TechIconClient) Delete() *TechIconDelete {
	mutation := newTechIconMutation(c.config, OpDelete)
	return &TechIconDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TechIconClient) DeleteOne(_m *TechIcon) *TechIconDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TechIconClient) DeleteOneID(id uuid.UUID) *TechIconDeleteOne {
	builder := c.Delete().Where(techicon.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TechIconDeleteOne{builder}
}

// Query returns a query builder for TechIcon.
func (c *TechIconClient) Query() *TechIconQuery {
	return &TechIconQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTechIcon},
		inters: c.Interceptors(),
	}
}

// Get returns a TechIcon entity by its id.
func (c *TechIconClient) Get(ctx context.Context, id uuid.UUID) (*TechIcon, error) {
	return c.Query().Where(techicon.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TechIconClient) GetX(ctx context.Context, id uuid.UUID) *TechIcon {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryTechnology queries the technology edge of a TechIcon.
func (c *TechIconClient) QueryTechnology(_m *TechIcon) *TechnologyQuery {
	query := (&TechnologyClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(techicon.Table, techicon.FieldID, id),
			sqlgraph.To(technology.Table, technology.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, false, techicon.TechnologyTable, techicon.TechnologyColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryVariant queries the variant edge of a TechIcon.
func (c *TechIconClient) QueryVariant(_m *TechIcon) *IconVariantQuery {
	query := (&IconVariantClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(techicon.Table, techicon.FieldID, id),
			sqlgraph.To(iconvariant.Table, iconvariant.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, false, techicon.VariantTable, techicon.VariantColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *TechIconClient) Hooks() []Hook {
	return c.hooks.TechIcon
}

// Interceptors returns the client interceptors.
func (c *TechIconClient) Interceptors() []Interceptor {
	return c.inters.TechIcon
}

func (c *TechIconClient) mutate(ctx context.Context, m *TechIconMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TechIconCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TechIconUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TechIconUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TechIconDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown TechIcon mutation op: %q", m.Op())
	}
}

// TechnologyClient is a client for the Technology schema.
type TechnologyClient struct {
	config
}

// NewTechnologyClient returns a client for the Technology from the given config.
func NewTechnologyClient(c config) *TechnologyClient {
	return &TechnologyClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `technology.Hooks(f(g(h())))`.
func (c *TechnologyClient) Use(hooks ...Hook) {
	c.hooks.Technology = append(c.hooks.Technology, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `technology.Intercept(f(g(h())))`.
func (c *TechnologyClient) Intercept(interceptors ...Interceptor) {
	c.inters.Technology = append(c.inters.Technology, interceptors...)
}

// Create returns a builder for creating a Technology entity.
func (c *TechnologyClient) Create() *TechnologyCreate {
	mutation := newTechnologyMutation(c.config, OpCreate)
	return &TechnologyCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Technology entities.
func (c *TechnologyClient) CreateBulk(builders ...*TechnologyCreate) *TechnologyCreateBulk {
	return &TechnologyCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TechnologyClient) MapCreateBulk(slice any, setFunc func(*TechnologyCreate, int)) *TechnologyCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TechnologyCreateBulk{err: fmt.Errorf("calling to TechnologyClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TechnologyCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TechnologyCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Technology.
func (c *TechnologyClient) Update() *TechnologyUpdate {
	mutation := newTechnologyMutation(c.config, OpUpdate)
	return &TechnologyUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TechnologyClient) UpdateOne(_m *Technology) *TechnologyUpdateOne {
	mutation := newTechnologyMutation(c.config, OpUpdateOne, withTechnology(_m))
	return &TechnologyUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TechnologyClient) UpdateOneID(id uuid.UUID) *TechnologyUpdateOne {
	mutation := newTechnologyMutation(c.config, OpUpdateOne, withTechnologyID(id))
	return &TechnologyUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Technology.
func (c *TechnologyClient) Delete() *TechnologyDelete {
	mutation := newTechnologyMutation(c.config, OpDelete)
	return &TechnologyDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TechnologyClient) DeleteOne(_m *Technology) *TechnologyDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TechnologyClient) DeleteOneID(id uuid.UUID) *TechnologyDeleteOne {
	builder := c.Delete().Where(technology.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TechnologyDeleteOne{builder}
}

// Query returns a query builder for Technology.
func (c *TechnologyClient) Query() *TechnologyQuery {
	return &TechnologyQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTechnology},
		inters: c.Interceptors(),
	}
}

// Get returns a Technology entity by its id.
func (c *TechnologyClient) Get(ctx context.Context, id uuid.UUID) (*Technology, error) {
	return c.Query().Where(technology.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TechnologyClient) GetX(ctx context.Context, id uuid.UUID) *Technology {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryIcons queries the icons edge of a Technology.
func (c *TechnologyClient) QueryIcons(_m *Technology) *TechIconQuery {
	query := (&TechIconClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(technology.Table, technology.FieldID, id),
			sqlgraph.To(techicon.Table, techicon.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, true, technology.IconsTable, technology.IconsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryDetails queries the details edge of a Technology.
func (c *TechnologyClient) QueryDetails(_m *Technology) *TechDetailQuery {
	query := (&TechDetailClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(technology.Table, technology.FieldID, id),
			sqlgraph.To(techdetail.Table, techdetail.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, technology.DetailsTable, technology.DetailsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *TechnologyClient) Hooks() []Hook {
	return c.hooks.Technology
}

// Interceptors returns the client interceptors.
func (c *TechnologyClient) Interceptors() []Interceptor {
	return c.inters.Technology
}

func (c *TechnologyClient) mutate(ctx context.Context, m *TechnologyMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TechnologyCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TechnologyUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TechnologyUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TechnologyDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Technology mutation op: %q", m.Op())
	}
}

// UserClient is a client for the User schema.
type UserClient struct {
	config
}

// NewUserClient returns a client for the User from the given config.
func NewUserClient(c config) *UserClient {
	return &UserClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `user.Hooks(f(g(h())))`.
func (c *UserClient) Use(hooks ...Hook) {
	c.hooks.User = append(c.hooks.User, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `user.Intercept(f(g(h())))`.
func (c *UserClient) Intercept(interceptors ...Interceptor) {
	c.inters.User = append(c.inters.User, interceptors...)
}

// Create returns a builder for creating a User entity.
func (c *UserClient) Create() *UserCreate {
	mutation := newUserMutation(c.config, OpCreate)
	return &UserCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of User entities.
func (c *UserClient) CreateBulk(builders ...*UserCreate) *UserCreateBulk {
	return &UserCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *UserClient) MapCreateBulk(slice any, setFunc func(*UserCreate, int)) *UserCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &UserCreateBulk{err: fmt.Errorf("calling to UserClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*UserCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &UserCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for User.
func (c *UserClient) Update() *UserUpdate {
	mutation := newUserMutation(c.config, OpUpdate)
	return &UserUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *UserClient) UpdateOne(_m *User) *UserUpdateOne {
	mutation := newUserMutation(c.config, OpUpdateOne, withUser(_m))
	return &UserUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *UserClient) UpdateOneID(id uuid.UUID) *UserUpdateOne {
	mutation := newUserMutation(c.config, OpUpdateOne, withUserID(id))
	return &UserUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for User.
func (c *UserClient) Delete() *UserDelete {
	mutation := newUserMutation(c.config, OpDelete)
	return &UserDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *UserClient) DeleteOne(_m *User) *UserDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *UserClient) DeleteOneID(id uuid.UUID) *UserDeleteOne {
	builder := c.Delete().Where(user.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &UserDeleteOne{builder}
}

// Query returns a query builder for User.
func (c *UserClient) Query() *UserQuery {
	return &UserQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeUser},
		inters: c.Interceptors(),
	}
}

// Get returns a User entity by its id.
func (c *UserClient) Get(ctx context.Context, id uuid.UUID) (*User, error) {
	return c.Query().Where(user.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *UserClient) GetX(ctx context.Context, id uuid.UUID) *User {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *UserClient) Hooks() []Hook {
	return c.hooks.User
}

// Interceptors returns the client interceptors.
func (c *UserClient) Interceptors() []Interceptor {
	return c.inters.User
}

func (c *UserClient) mutate(ctx context.Context, m *UserMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&UserCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&UserUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&UserUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&UserDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown User mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		Certificate, ChatbotSetting, ContactMessage, CustomForm, IconVariant, SeoEntry,
		Task, TechDetail, TechIcon, Technology, User []ent.Hook
	}
	inters struct {
		Certificate, ChatbotSetting, ContactMessage, CustomForm, IconVariant, SeoEntry,
		Task, TechDetail, TechIcon, Technology, User []ent.Interceptor
	}
)
