// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"database/sql/driver"
	"fmt"
	"math"
	"portfolio-api/ent/predicate"
	"portfolio-api/ent/techdetail"
	"portfolio-api/ent/techicon"
	"portfolio-api/ent/technology"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// TechnologyQuery is the builder for querying Technology entities.
type TechnologyQuery struct {
	config
	ctx         *QueryContext
	order       []technology.OrderOption
	inters      []Interceptor
	predicates  []predicate.Technology
	withIcons   *TechIconQuery
	withDetails *TechDetailQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the TechnologyQuery builder.
func (_q *TechnologyQuery) Where(ps ...predicate.Technology) *TechnologyQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *TechnologyQuery) Limit(limit int) *TechnologyQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *TechnologyQuery) Offset(offset int) *TechnologyQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *TechnologyQuery) Unique(unique bool) *TechnologyQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *TechnologyQuery) Order(o ...technology.OrderOption) *TechnologyQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryIcons chains the current query on the "icons" edge.
func (_q *TechnologyQuery) QueryIcons() *TechIconQuery {
	query := (&TechIconClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(technology.Table, technology.FieldID, selector),
			sqlgraph.To(techicon.Table, techicon.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, true, technology.IconsTable, technology.IconsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryDetails chains the current query on the "details" edge.
func (_q *TechnologyQuery) QueryDetails() *TechDetailQuery {
	query := (&TechDetailClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(technology.Table, technology.FieldID, selector),
			sqlgraph.To(techdetail.Table, techdetail.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, technology.DetailsTable, technology.DetailsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first Technology entity from the query.
// Returns a *NotFoundError when no Technology was found.
func (_q *TechnologyQuery) First(ctx context.Context) (*Technology, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{technology.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *TechnologyQuery) FirstX(ctx context.Context) *Technology {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first Technology ID from the query.
// Returns a *NotFoundError when no Technology ID was found.
func (_q *TechnologyQuery) FirstID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{technology.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *TechnologyQuery) FirstIDX(ctx context.Context) uuid.UUID {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single Technology entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one Technology entity is found.
// Returns a *NotFoundError when no Technology entities are found.
func (_q *TechnologyQuery) Only(ctx context.Context) (*Technology, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{technology.Label}
	default:
		return nil, &NotSingularError{technology.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *TechnologyQuery) OnlyX(ctx context.Context) *Technology {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only Technology ID in the query.
// Returns a *NotSingularError when more than one Technology ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *TechnologyQuery) OnlyID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{technology.Label}
	default:
		err = &NotSingularError{technology.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *TechnologyQuery) OnlyIDX(ctx context.Context) uuid.UUID {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of Technologies.
func (_q *TechnologyQuery) All(ctx context.Context) ([]*Technology, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*Technology, *TechnologyQuery]()
	return withInterceptors[[]*Technology](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *TechnologyQuery) AllX(ctx context.Context) []*Technology {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of Technology IDs.
func (_q *TechnologyQuery) IDs(ctx context.Context) (ids []uuid.UUID, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(technology.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *TechnologyQuery) IDsX(ctx context.Context) []uuid.UUID {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *TechnologyQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*TechnologyQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *TechnologyQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *TechnologyQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryExist)
	switch _, err := _q.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (_q *TechnologyQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the TechnologyQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *TechnologyQuery) Clone() *TechnologyQuery {
	if _q == nil {
		return nil
	}
	return &TechnologyQuery{
		config:      _q.config,
		ctx:         _q.ctx.Clone(),
		order:       append([]technology.OrderOption{}, _q.order...),
		inters:      append([]Interceptor{}, _q.inters...),
		predicates:  append([]predicate.Technology{}, _q.predicates...),
		withIcons:   _q.withIcons.Clone(),
		withDetails: _q.withDetails.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithIcons tells the query-builder to eager-load the nodes that are connected to
// the "icons" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *TechnologyQuery) WithIcons(opts ...func(*TechIconQuery)) *TechnologyQuery {
	query := (&TechIconClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withIcons = query
	return _q
}

// WithDetails tells the query-builder to eager-load the nodes that are connected to
// the "details" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *TechnologyQuery) WithDetails(opts ...func(*TechDetailQuery)) *TechnologyQuery {
	query := (&TechDetailClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withDetails = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		CompanyName string `json:"company_name,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.Technology.Query().
//		GroupBy(technology.FieldCompanyName).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *TechnologyQuery) GroupBy(field string, fields ...string) *TechnologyGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &TechnologyGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = technology.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		CompanyName string `json:"company_name,omitempty"`
//	}
//
//	client.Technology.Query().
//		Select(technology.FieldCompanyName).
//		Scan(ctx, &v)
func (_q *TechnologyQuery) Select(fields ...string) *TechnologySelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &TechnologySelect{TechnologyQuery: _q}
	sbuild.label = technology.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a TechnologySelect configured with the given aggregations.
func (_q *TechnologyQuery) Aggregate(fns ...AggregateFunc) *TechnologySelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *TechnologyQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range _q.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, _q); err != nil {
				return err
			}
		}
	}
	for _, f := range _q.ctx.Fields {
		if !technology.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if _q.path != nil {
		prev, err := _q.path(ctx)
		if err != nil {
			return err
		}
		_q.sql = prev
	}
	return nil
}

func (_q *TechnologyQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*Technology, error) {
	var (
		nodes       = []*Technology{}
		_spec       = _q.querySpec()
		loadedTypes = [2]bool{
			_q.withIcons != nil,
			_q.withDetails != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*Technology).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &Technology{config: _q.config}
		nodes = append(nodes, node)
		node.Edges.loadedTypes = loadedTypes
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, _q.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	if query := _q.withIcons; query != nil {
		if err := _q.loadIcons(ctx, query, nodes,
			func(n *Technology) { n.Edges.Icons = []*TechIcon{} },
			func(n *Technology, e *TechIcon) { n.Edges.Icons = append(n.Edges.Icons, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withDetails; query != nil {
		if err := _q.loadDetails(ctx, query, nodes, nil,
			func(n *Technology, e *TechDetail) { n.Edges.Details = e }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *TechnologyQuery) loadIcons(ctx context.Context, query *TechIconQuery, nodes []*Technology, init func(*Technology), assign func(*Technology, *TechIcon)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[uuid.UUID]*Technology)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	query.withFKs = true
	query.Where(predicate.TechIcon(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(technology.IconsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.tech_icon_technology
		if fk == nil {
			return fmt.Errorf(`foreign-key "tech_icon_technology" is nil for node %v`, n.ID)
		}
		node, ok := nodeids[*fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "tech_icon_technology" returned %v for node %v`, *fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *TechnologyQuery) loadDetails(ctx context.Context, query *TechDetailQuery, nodes []*Technology, init func(*Technology), assign func(*Technology, *TechDetail)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[uuid.UUID]*Technology)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
	}
	query.withFKs = true
	query.Where(predicate.TechDetail(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(technology.DetailsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.technology_details
		if fk == nil {
			return fmt.Errorf(`foreign-key "technology_details" is nil for node %v`, n.ID)
		}
		node, ok := nodeids[*fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "technology_details" returned %v for node %v`, *fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (_q *TechnologyQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *TechnologyQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(technology.Table, technology.Columns, sqlgraph.NewFieldSpec(technology.FieldID, field.TypeUUID))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, technology.FieldID)
		for i := range fields {
			if fields[i] != technology.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
	}
	if ps := _q.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := _q.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := _q.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := _q.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (_q *TechnologyQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(technology.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = technology.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if _q.sql != nil {
		selector = _q.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if _q.ctx.Unique != nil && *_q.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range _q.predicates {
		p(selector)
	}
	for _, p := range _q.order {
		p(selector)
	}
	if offset := _q.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := _q.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// TechnologyGroupBy is the group-by builder for Technology entities.
type TechnologyGroupBy struct {
	selector
	build *TechnologyQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *TechnologyGroupBy) Aggregate(fns ...AggregateFunc) *TechnologyGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *TechnologyGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*TechnologyQuery, *TechnologyGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *TechnologyGroupBy) sqlScan(ctx context.Context, root *TechnologyQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(_g.fns))
	for _, fn := range _g.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*_g.flds)+len(_g.fns))
		for _, f := range *_g.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*_g.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _g.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// TechnologySelect is the builder for selecting fields of Technology entities.
type TechnologySelect struct {
	*TechnologyQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *TechnologySelect) Aggregate(fns ...AggregateFunc) *TechnologySelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *TechnologySelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*TechnologyQuery, *TechnologySelect](ctx, _s.TechnologyQuery, _s, _s.inters, v)
}

func (_s *TechnologySelect) sqlScan(ctx context.Context, root *TechnologyQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(_s.fns))
	for _, fn := range _s.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*_s.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _s.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
