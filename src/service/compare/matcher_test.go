package compare

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quality-trends/src/model"
)

func value(v float64) *float64 { return &v }

func TestIdentityKey(t *testing.T) {
	tests := []struct {
		name    string
		record  model.MetricRecord
		want    string
		wantErr bool
	}{
		{
			name:   "valid record",
			record: record("l3-angular-delta", "stg", nil),
			want:   "l3-angular-delta___stg",
		},
		{
			name:    "missing repository",
			record:  record("", "stg", nil),
			wantErr: true,
		},
		{
			name:    "missing branch",
			record:  record("l3-angular-delta", "", nil),
			wantErr: true,
		},
		{
			name:    "whitespace only branch",
			record:  record("l3-angular-delta", "   ", nil),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, err := IdentityKey(tt.record)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, key)
		})
	}
}

func TestMatchClosedWorldIntersection(t *testing.T) {
	periodA := []model.MetricRecord{
		record("common", "stg", map[string]*float64{"Code Smell": value(100)}),
		record("only-in-a", "stg", map[string]*float64{"Code Smell": value(50)}),
	}
	periodB := []model.MetricRecord{
		record("common", "stg", map[string]*float64{"Code Smell": value(90)}),
		record("only-in-b", "stg", map[string]*float64{"Code Smell": value(10)}),
	}

	deltas := Match(periodA, periodB, "Code Smell")

	require.Len(t, deltas, 1)
	assert.Equal(t, "common", deltas[0].Repository)
	assert.Equal(t, float64(-10), deltas[0].Difference)
}

func TestMatchSkipsNullValues(t *testing.T) {
	periodA := []model.MetricRecord{
		record("a", "stg", map[string]*float64{"Code Smell": nil}),
		record("b", "stg", map[string]*float64{"Code Smell": value(5)}),
	}
	periodB := []model.MetricRecord{
		record("a", "stg", map[string]*float64{"Code Smell": value(7)}),
		record("b", "stg", map[string]*float64{}),
	}

	assert.Empty(t, Match(periodA, periodB, "Code Smell"))
}

func TestMatchDistinguishesBranches(t *testing.T) {
	// Same repository, different branch: distinct identities.
	periodA := []model.MetricRecord{
		record("repo", "stg", map[string]*float64{"Duplications": value(1)}),
		record("repo", "stage", map[string]*float64{"Duplications": value(2)}),
	}
	periodB := []model.MetricRecord{
		record("repo", "stg", map[string]*float64{"Duplications": value(3)}),
	}

	deltas := Match(periodA, periodB, "Duplications")

	require.Len(t, deltas, 1)
	assert.Equal(t, "stg", deltas[0].Branch)
	assert.Equal(t, float64(2), deltas[0].Difference)
}

func TestMatchPopulatesCleanName(t *testing.T) {
	periodA := []model.MetricRecord{record("l3-angular-delta", "stg", map[string]*float64{"Code Smell": value(300)})}
	periodB := []model.MetricRecord{record("l3-angular-delta", "stg", map[string]*float64{"Code Smell": value(270)})}

	deltas := Match(periodA, periodB, "Code Smell")

	require.Len(t, deltas, 1)
	assert.Equal(t, "angular-delta", deltas[0].CleanName)
	assert.Equal(t, "angular-delta (stg)", deltas[0].DisplayName())
}

func TestSortByDifference(t *testing.T) {
	deltas := []model.MetricDelta{
		{Repository: "b", Branch: "stg", Difference: 10},
		{Repository: "a", Branch: "stg", Difference: -30},
		{Repository: "c", Branch: "stg", Difference: -5},
		{Repository: "a", Branch: "stage", Difference: 10},
	}

	SortByDifference(deltas)

	assert.Equal(t, float64(-30), deltas[0].Difference)
	assert.Equal(t, float64(-5), deltas[1].Difference)
	// Equal differences tie-break on repository then branch.
	assert.Equal(t, "a", deltas[2].Repository)
	assert.Equal(t, "b", deltas[3].Repository)
}
