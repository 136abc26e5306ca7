package audit_test

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/professional-agenda/internal/audit"
)

func TestZapSink(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zap.InfoLevel)
	sink := audit.NewZapSink(zap.New(core))

	ev := audit.Event{
		ID:             uuid.New(),
		ProfessionalID: "1",
		Action:         audit.ActionSessionBooked,
		Day:            "2022-01-01",
		OccurredAt:     time.Now(),
	}
	require.NoError(t, sink.Write(context.Background(), ev))

	entries := logs.FilterMessage(audit.ActionSessionBooked).All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "1", fields["professional_id"])
	assert.Equal(t, "2022-01-01", fields["day"])
	assert.Equal(t, ev.ID.String(), fields["event_id"])
}

func TestGormSink(t *testing.T) {
	t.Parallel()

	sqlDB, dbMock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	ev := audit.Event{
		ID:             uuid.New(),
		ProfessionalID: "1",
		Action:         audit.ActionSessionBooked,
		Day:            "2022-01-01",
		Metadata:       map[string]string{"hour": "08:00"},
		OccurredAt:     time.Now(),
	}

	dbMock.ExpectQuery(`INSERT INTO "audit_logs"`).
		WithArgs(ev.ID.String(), "1", audit.ActionSessionBooked, "2022-01-01", `{"hour":"08:00"}`, sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))

	require.NoError(t, audit.NewGormSink(db).Write(context.Background(), ev))
	require.NoError(t, dbMock.ExpectationsWereMet())
}

func TestKafkaSink_PingWithoutBrokers(t *testing.T) {
	sink := audit.NewKafkaSink(" , ", "topic")
	defer sink.Close()

	assert.EqualError(t, sink.Ping(context.Background()), "kafka brokers not configured")
}

func TestSplitBrokers(t *testing.T) {
	assert.Equal(t, []string{"a:9092", "b:9092"}, audit.SplitBrokers(" a:9092 ,,b:9092 "))
	assert.Nil(t, audit.SplitBrokers(""))
}
