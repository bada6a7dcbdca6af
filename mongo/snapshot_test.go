package mongo_test

import (
	"context"
	"testing"
	"time"

	"github.com/newsdesk/frontpage"
	fpmongo "github.com/newsdesk/frontpage/mongo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func TestSnapshotService_ReplaceSnapshot_ValidatesInput(t *testing.T) {
	t.Parallel()

	svc := fpmongo.NewSnapshotService(fpmongo.NewDB("", "news_db", "daily_news"))

	err := svc.ReplaceSnapshot(context.Background(), &frontpage.Snapshot{})

	require.Error(t, err)
	assert.Equal(t, frontpage.EINVALID, frontpage.ErrorCode(err))
}

func TestDB_Open_RequiresURI(t *testing.T) {
	t.Parallel()

	db := fpmongo.NewDB("", "news_db", "daily_news")

	err := db.Open(context.Background())

	require.Error(t, err)
	assert.Equal(t, frontpage.EINVALID, frontpage.ErrorCode(err))
	assert.Contains(t, frontpage.ErrorMessage(err), "MONGODB_URI")
}

// The stored document must keep the {date, news} shape with snake_case
// article fields, since external readers query the collection directly.
func TestSnapshot_StoredDocumentShape(t *testing.T) {
	t.Parallel()

	snap := &frontpage.Snapshot{
		Date: time.Date(2025, 11, 3, 6, 0, 0, 0, time.UTC),
		News: frontpage.CategorizedNews{
			"World": {{
				Headline:  "Summit concludes",
				Summary:   "Delegates agreed on a framework.",
				KeyPoints: []string{"Framework signed"},
			}},
		},
	}

	raw, err := bson.Marshal(snap)
	require.NoError(t, err)

	// Decode through independently tagged fields: a wrong key in the stored
	// document leaves the matching field empty.
	var doc struct {
		Date time.Time `bson:"date"`
		News map[string][]struct {
			Headline  string   `bson:"headline"`
			Summary   string   `bson:"summary"`
			KeyPoints []string `bson:"key_points"`
		} `bson:"news"`
	}
	require.NoError(t, bson.Unmarshal(raw, &doc))

	assert.True(t, doc.Date.Equal(snap.Date))
	require.Len(t, doc.News["World"], 1)
	article := doc.News["World"][0]
	assert.Equal(t, "Summit concludes", article.Headline)
	assert.Equal(t, "Delegates agreed on a framework.", article.Summary)
	assert.Equal(t, []string{"Framework signed"}, article.KeyPoints)
}
