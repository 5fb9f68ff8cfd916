package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuild_CollectsConditionsInOrder(t *testing.T) {
	q := Build(
		WithOrgID("org-1"),
		WithDocumentIDIn([]string{"a", "b"}),
		WithoutDocumentType(),
	)

	conds := q.Conditions()
	assert.Len(t, conds, 3)

	assert.Equal(t, ColumnOrgID, conds[0].Field())
	assert.Equal(t, "org-1", conds[0].Value())
	assert.Equal(t, OpEqual, conds[0].Operator())

	assert.True(t, conds[1].In())
	assert.Equal(t, []string{"a", "b"}, conds[1].Value())

	assert.Equal(t, OpIsNull, conds[2].Operator())
	assert.Nil(t, conds[2].Value())
	assert.Equal(t, "document_type_id IS NULL", conds[2].String())
}

func TestBuild_OrdersAndPagination(t *testing.T) {
	opts := append([]Option{WithNewestFirst(), WithOrderAsc(ColumnName)}, WithPagination(10, 20)...)
	q := Build(opts...)

	orders := q.Orders()
	assert.Len(t, orders, 2)
	assert.Equal(t, ColumnCreatedAt, orders[0].Field())
	assert.False(t, orders[0].Ascending())
	assert.Equal(t, ColumnName, orders[1].Field())
	assert.True(t, orders[1].Ascending())

	assert.Equal(t, 10, q.LimitValue())
	assert.Equal(t, 20, q.OffsetValue())
}

func TestQuery_ConditionsReturnsCopy(t *testing.T) {
	q := Build(WithID("x"))
	conds := q.Conditions()
	conds[0] = Condition{}

	assert.Equal(t, ColumnID, q.Conditions()[0].Field())
}

func TestBuild_Empty(t *testing.T) {
	q := Build()
	assert.Empty(t, q.Conditions())
	assert.Empty(t, q.Orders())
	assert.Zero(t, q.LimitValue())
	assert.Zero(t, q.OffsetValue())
}
