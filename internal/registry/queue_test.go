package registry

import (
	"testing"

	"github.com/rwedu/schoolverify-backend/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestPartitionSeed(t *testing.T) {
	q := Partition(seedSchools(t))

	assert.Equal(t, []string{"SCH-004", "SCH-008", "SCH-012", "SCH-017", "SCH-020"}, ids(q.Pending))
	assert.Equal(t, []string{"SCH-007", "SCH-013", "SCH-016"}, ids(q.Unverified))
	assert.Equal(t, []string{"SCH-010"}, ids(q.Rejected))
	assert.Len(t, q.Verified, 11)
}

func TestPartitionEmpty(t *testing.T) {
	q := Partition(nil)
	assert.NotNil(t, q.Pending)
	assert.NotNil(t, q.Unverified)
	assert.NotNil(t, q.Verified)
	assert.NotNil(t, q.Rejected)

	one := Partition([]model.School{mkSchool("A", "A", "Huye", model.StatusRejected)})
	assert.Len(t, one.Rejected, 1)
	assert.Empty(t, one.Pending)
}
