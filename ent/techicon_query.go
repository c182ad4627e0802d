// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"fmt"
	"math"
	"portfolio-api/ent/iconvariant"
	"portfolio-api/ent/predicate"
	"portfolio-api/ent/techicon"
	"portfolio-api/ent/technology"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// TechIconQuery is the builder for querying TechIcon entities.
type TechIconQuery struct {
	config
	ctx            *QueryContext
	order          []techicon.OrderOption
	inters         []Interceptor
	predicates     []predicate.TechIcon
	withTechnology *TechnologyQuery
	withVariant    *IconVariantQuery
	withFKs        bool
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the TechIconQuery builder.
func (_q *TechIconQuery) Where(ps ...predicate.TechIcon) *TechIconQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *TechIconQuery) Limit(limit int) *TechIconQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *TechIconQuery) Offset(offset int) *TechIconQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *TechIconQuery) Unique(unique bool) *TechIconQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *TechIconQuery) Order(o ...techicon.OrderOption) *TechIconQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryTechnology chains the current query on the "technology" edge.
func (_q *TechIconQuery) QueryTechnology() *TechnologyQuery {
	query := (&TechnologyClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(techicon.Table, techicon.FieldID, selector),
			sqlgraph.To(technology.Table, technology.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, false, techicon.TechnologyTable, techicon.TechnologyColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryVariant chains the current query on the "variant" edge.
func (_q *TechIconQuery) QueryVariant() *IconVariantQuery {
	query := (&IconVariantClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(techicon.Table, techicon.FieldID, selector),
			sqlgraph.To(iconvariant.Table, iconvariant.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, false, techicon.VariantTable, techicon.VariantColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first TechIcon entity from the query.
// Returns a *NotFoundError when no TechIcon was found.
func (_q *TechIconQuery) First(ctx context.Context) (*TechIcon, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{techicon.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *TechIconQuery) FirstX(ctx context.Context) *TechIcon {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first TechIcon ID from the query.
// Returns a *NotFoundError when no TechIcon ID was found.
func (_q *TechIconQuery) FirstID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{techicon.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *TechIconQuery) FirstIDX(ctx context.Context) uuid.UUID {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single TechIcon entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one TechIcon entity is found.
// Returns a *NotFoundError when no TechIcon entities are found.
func (_q *TechIconQuery) Only(ctx context.Context) (*TechIcon, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{techicon.Label}
	default:
		return nil, &NotSingularError{techicon.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *TechIconQuery) OnlyX(ctx context.Context) *TechIcon {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only TechIcon ID in the query.
// Returns a *NotSingularError when more than one TechIcon ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *TechIconQuery) OnlyID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{techicon.Label}
	default:
		err = &NotSingularError{techicon.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *TechIconQuery) OnlyIDX(ctx context.Context) uuid.UUID {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of TechIcons.
func (_q *TechIconQuery) All(ctx context.Context) ([]*TechIcon, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*TechIcon, *TechIconQuery]()
	return withInterceptors[[]*TechIcon](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *TechIconQuery) AllX(ctx context.Context) []*TechIcon {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of TechIcon IDs.
func (_q *TechIconQuery) IDs(ctx context.Context) (ids []uuid.UUID, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(techicon.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *TechIconQuery) IDsX(ctx context.Context) []uuid.UUID {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *TechIconQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*TechIconQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *TechIconQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *TechIconQuery) Exist(ctx context.Context) (bool, error) {
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
func (_q *TechIconQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the TechIconQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *TechIconQuery) Clone() *TechIconQuery {
	if _q == nil {
		return nil
	}
	return &TechIconQuery{
		config:         _q.config,
		ctx:            _q.ctx.Clone(),
		order:          append([]techicon.OrderOption{}, _q.order...),
		inters:         append([]Interceptor{}, _q.inters...),
		predicates:     append([]predicate.TechIcon{}, _q.predicates...),
		withTechnology: _q.withTechnology.Clone(),
		withVariant:    _q.withVariant.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithTechnology tells the query-builder to eager-load the nodes that are connected to
// the "technology" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *TechIconQuery) WithTechnology(opts ...func(*TechnologyQuery)) *TechIconQuery {
	query := (&TechnologyClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withTechnology = query
	return _q
}

// WithVariant tells the query-builder to eager-load the nodes that are connected to
// the "variant" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *TechIconQuery) WithVariant(opts ...func(*IconVariantQuery)) *TechIconQuery {
	query := (&IconVariantClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withVariant = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		FileURL string `json:"file_url,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.TechIcon.Query().
//		GroupBy(techicon.FieldFileURL).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *TechIconQuery) GroupBy(field string, fields ...string) *TechIconGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &TechIconGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = techicon.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		FileURL string `json:"file_url,omitempty"`
//	}
//
//	client.TechIcon.Query().
//		Select(techicon.FieldFileURL).
//		Scan(ctx, &v)
func (_q *TechIconQuery) Select(fields ...string) *TechIconSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &TechIconSelect{TechIconQuery: _q}
	sbuild.label = techicon.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a TechIconSelect configured with the given aggregations.
func (_q *TechIconQuery) Aggregate(fns ...AggregateFunc) *TechIconSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *TechIconQuery) prepareQuery(ctx context.Context) error {
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
		if !techicon.ValidColumn(f) {
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

func (_q *TechIconQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*TechIcon, error) {
	var (
		nodes       = []*TechIcon{}
		withFKs     = _q.withFKs
		_spec       = _q.querySpec()
		loadedTypes = [2]bool{
			_q.withTechnology != nil,
			_q.withVariant != nil,
		}
	)
	if _q.withTechnology != nil || _q.withVariant != nil {
		withFKs = true
	}
	if withFKs {
		_spec.Node.Columns = append(_spec.Node.Columns, techicon.ForeignKeys...)
	}
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*TechIcon).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &TechIcon{config: _q.config}
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
	if query := _q.withTechnology; query != nil {
		if err := _q.loadTechnology(ctx, query, nodes, nil,
			func(n *TechIcon, e *Technology) { n.Edges.Technology = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withVariant; query != nil {
		if err := _q.loadVariant(ctx, query, nodes, nil,
			func(n *TechIcon, e *IconVariant) { n.Edges.Variant = e }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *TechIconQuery) loadTechnology(ctx context.Context, query *TechnologyQuery, nodes []*TechIcon, init func(*TechIcon), assign func(*TechIcon, *Technology)) error {
	ids := make([]uuid.UUID, 0, len(nodes))
	nodeids := make(map[uuid.UUID][]*TechIcon)
	for i := range nodes {
		if nodes[i].tech_icon_technology == nil {
			continue
		}
		fk := *nodes[i].tech_icon_technology
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(technology.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "tech_icon_technology" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (_q *TechIconQuery) loadVariant(ctx context.Context, query *IconVariantQuery, nodes []*TechIcon, init func(*TechIcon), assign func(*TechIcon, *IconVariant)) error {
	ids := make([]uuid.UUID, 0, len(nodes))
	nodeids := make(map[uuid.UUID][]*TechIcon)
	for i := range nodes {
		if nodes[i].tech_icon_variant == nil {
			continue
		}
		fk := *nodes[i].tech_icon_variant
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(iconvariant.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "tech_icon_variant" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}

func (_q *TechIconQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *TechIconQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(techicon.Table, techicon.Columns, sqlgraph.NewFieldSpec(techicon.FieldID, field.TypeUUID))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, techicon.FieldID)
		for i := range fields {
			if fields[i] != techicon.FieldID {
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

func (_q *TechIconQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(techicon.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = techicon.Columns
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

// TechIconGroupBy is the group-by builder for TechIcon entities.
type TechIconGroupBy struct {
	selector
	build *TechIconQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *TechIconGroupBy) Aggregate(fns ...AggregateFunc) *TechIconGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *TechIconGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*TechIconQuery, *TechIconGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *TechIconGroupBy) sqlScan(ctx context.Context, root *TechIconQuery, v any) error {
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

// TechIconSelect is the builder for selecting fields of TechIcon entities.
type TechIconSelect struct {
	*TechIconQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *TechIconSelect) Aggregate(fns ...AggregateFunc) *TechIconSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *TechIconSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*TechIconQuery, *TechIconSelect](ctx, _s.TechIconQuery, _s, _s.inters, v)
}

func (_s *TechIconSelect) sqlScan(ctx context.Context, root *TechIconQuery, v any) error {
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
