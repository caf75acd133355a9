package history

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore(t *testing.T) {
	a := assert.New(t)
	ctx := context.Background()

	store, err := New(filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, err)
	defer store.Close()

	session := uuid.New()
	otherSession := uuid.New()

	a.NoError(store.Record(ctx, Deal{
		SessionID:   session,
		AnsweredAt:  time.Now(),
		Hand:        "5s,10h,13d,6c,9s",
		UserScore:   6,
		ActualScore: 6,
	}))

	a.NoError(store.Record(ctx, Deal{
		SessionID:   session,
		AnsweredAt:  time.Now(),
		Hand:        "1s,1h,2h,3d,4c",
		UserScore:   4,
		ActualScore: 10,
	}))

	a.NoError(store.Record(ctx, Deal{
		SessionID:   otherSession,
		AnsweredAt:  time.Now(),
		Hand:        "5s,5h,5d,5c,11s",
		UserScore:   29,
		ActualScore: 29,
	}))

	summary, err := store.Summary(ctx, session)
	a.NoError(err)
	a.Equal(Summary{Attempts: 2, Correct: 1}, summary)

	summary, err = store.Summary(ctx, otherSession)
	a.NoError(err)
	a.Equal(Summary{Attempts: 1, Correct: 1}, summary)

	summary, err = store.Summary(ctx, uuid.New())
	a.NoError(err)
	a.Equal(Summary{}, summary)
}
