package frontpage_test

import (
	"testing"

	"github.com/newsdesk/frontpage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArticle_Validate(t *testing.T) {
	t.Parallel()

	t.Run("valid", func(t *testing.T) {
		t.Parallel()

		a := &frontpage.Article{Headline: "Markets rally"}
		assert.NoError(t, a.Validate())
	})

	t.Run("missing headline", func(t *testing.T) {
		t.Parallel()

		a := &frontpage.Article{Summary: "A summary without a headline."}
		err := a.Validate()
		require.Error(t, err)
		assert.Equal(t, frontpage.EINVALID, frontpage.ErrorCode(err))
	})
}

func TestCategorizedNews_Normalize(t *testing.T) {
	t.Parallel()

	t.Run("fills missing categories with empty slices", func(t *testing.T) {
		t.Parallel()

		news := frontpage.CategorizedNews{
			"World": {{Headline: "Summit concludes"}},
		}

		got := news.Normalize(frontpage.DefaultCategories)

		require.Len(t, got, len(frontpage.DefaultCategories))
		for _, cat := range frontpage.DefaultCategories {
			articles, ok := got[cat]
			require.True(t, ok, "category %q missing", cat)
			assert.NotNil(t, articles)
		}
		assert.Len(t, got["World"], 1)
		assert.Empty(t, got["Sports"])
	})

	t.Run("drops categories outside the list", func(t *testing.T) {
		t.Parallel()

		news := frontpage.CategorizedNews{
			"World":   {{Headline: "Summit concludes"}},
			"Opinion": {{Headline: "An editorial"}},
		}

		got := news.Normalize([]frontpage.Category{"World"})

		require.Len(t, got, 1)
		assert.NotContains(t, got, frontpage.Category("Opinion"))
	})

	t.Run("drops articles without headlines", func(t *testing.T) {
		t.Parallel()

		news := frontpage.CategorizedNews{
			"Business": {
				{Headline: "Shares climb"},
				{Summary: "Orphaned summary."},
			},
		}

		got := news.Normalize([]frontpage.Category{"Business"})

		require.Len(t, got["Business"], 1)
		assert.Equal(t, "Shares climb", got["Business"][0].Headline)
	})
}

func TestCategorizedNews_Articles(t *testing.T) {
	t.Parallel()

	news := frontpage.CategorizedNews{
		"World":  {{Headline: "One"}, {Headline: "Two"}},
		"Health": {{Headline: "Three"}},
		"Sports": {},
	}

	assert.Equal(t, 3, news.Articles())
}
