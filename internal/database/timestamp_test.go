package database

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimestamp_TruncatesToMillisecondsUTC(t *testing.T) {
	loc := time.FixedZone("test", 3*60*60)
	in := time.Date(2024, 5, 6, 10, 11, 12, 123456789, loc)

	got := NewTimestamp(in)

	assert.Equal(t, time.UTC, got.Location())
	assert.Equal(t, 123000000, got.Nanosecond())
	assert.True(t, got.Equal(in.Truncate(time.Millisecond)))
}

func TestTimestamp_Step(t *testing.T) {
	base := NewTimestamp(time.Date(2024, 5, 6, 10, 11, 12, 998000000, time.UTC))

	assert.True(t, base.Step(0).Equal(base.Time))
	assert.Equal(t, 999000000, base.Step(1).Nanosecond())
	assert.Equal(t, 13, base.Step(2).Second())
	assert.Equal(t, 0, base.Step(2).Nanosecond())
}

func TestTimestamp_Scan(t *testing.T) {
	want := time.Date(2024, 5, 6, 7, 8, 9, 120000000, time.UTC)

	tests := []struct {
		name  string
		input any
		want  time.Time
	}{
		{"time", want, want},
		{"sqlite text", "2024-05-06 07:08:09.12+00:00", want},
		{"rfc3339", []byte("2024-05-06T07:08:09.120Z"), want},
		{"current_timestamp", "2024-05-06 07:08:09", want.Truncate(time.Second)},
		{"nil", nil, time.Time{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got Timestamp
			require.NoError(t, got.Scan(tt.input))
			assert.True(t, tt.want.Equal(got.Time), "got %v want %v", got.Time, tt.want)
		})
	}
}

func TestTimestamp_ScanRejectsGarbage(t *testing.T) {
	var ts Timestamp
	assert.Error(t, ts.Scan("yesterday"))
	assert.Error(t, ts.Scan(3.14))
}

func TestTimestamp_ValueOfZeroIsNull(t *testing.T) {
	v, err := Timestamp{}.Value()
	require.NoError(t, err)
	assert.Nil(t, v)
}

type stampedRow struct {
	ID        string    `gorm:"column:id;primaryKey"`
	CreatedAt Timestamp `gorm:"column:created_at;not null;default:CURRENT_TIMESTAMP"`
}

func (stampedRow) TableName() string { return "stamped_rows" }

func TestTimestamp_RoundTripThroughSQLite(t *testing.T) {
	ctx := context.Background()
	db := newMemoryDatabase(t)
	require.NoError(t, db.GORM().AutoMigrate(&stampedRow{}))

	at := time.Date(2023, 12, 31, 23, 59, 58, 987654321, time.UTC)
	require.NoError(t, db.Session(ctx).Create(&stampedRow{ID: "a", CreatedAt: NewTimestamp(at)}).Error)

	var got stampedRow
	require.NoError(t, db.Session(ctx).First(&got, "id = ?", "a").Error)
	assert.True(t, got.CreatedAt.Equal(at.Truncate(time.Millisecond)), "got %v", got.CreatedAt.Time)
}

func TestTimestamp_DatabaseDefault(t *testing.T) {
	ctx := context.Background()
	db := newMemoryDatabase(t)
	require.NoError(t, db.GORM().AutoMigrate(&stampedRow{}))

	require.NoError(t, db.Session(ctx).Exec("INSERT INTO stamped_rows (id) VALUES ('b')").Error)

	var got stampedRow
	require.NoError(t, db.Session(ctx).First(&got, "id = ?", "b").Error)
	assert.False(t, got.CreatedAt.IsZero())
	assert.WithinDuration(t, time.Now(), got.CreatedAt.Time, time.Minute)
}
