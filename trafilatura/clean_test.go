package trafilatura_test

import (
	"testing"

	"github.com/newsdesk/frontpage"
	"github.com/newsdesk/frontpage/trafilatura"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Cleaner implements frontpage.Cleaner at compile time.
var _ frontpage.Cleaner = (*trafilatura.Cleaner)(nil)

func TestCleaner_Clean(t *testing.T) {
	t.Parallel()

	t.Run("extracts main content as text", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<head><title>Evening Report</title></head>
<body>
<nav><a href="/">Home</a><a href="/world">World</a></nav>
<article>
<h1>Storm moves inland</h1>
<p>The storm weakened overnight as it moved inland, and authorities began assessing the damage along the coast.</p>
<p>Power crews restored service to most districts before morning, though schools remain closed.</p>
</article>
<footer>Copyright 2025</footer>
</body>
</html>`

		cleaner := trafilatura.NewCleaner()
		result, err := cleaner.Clean(html)

		require.NoError(t, err)
		assert.Contains(t, result.Text, "moved inland")
		assert.Contains(t, result.Text, "restored service")
		assert.NotContains(t, result.Text, "<p>")
	})

	t.Run("removes navigation boilerplate", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<head><title>Front Page</title></head>
<body>
<nav class="main-nav">
<ul>
<li><a href="/">Home</a></li>
<li><a href="/subscribe">Subscribe</a></li>
</ul>
</nav>
<main>
<article>
<h1>Budget passes after long debate</h1>
<p>Lawmakers approved the budget late on Thursday after a debate that ran well past midnight.</p>
</article>
</main>
</body>
</html>`

		cleaner := trafilatura.NewCleaner()
		result, err := cleaner.Clean(html)

		require.NoError(t, err)
		assert.Contains(t, result.Text, "approved the budget")
		assert.NotContains(t, result.Text, "Subscribe")
	})

	t.Run("extracts title from metadata", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<head>
<title>Evening Report - News</title>
<meta property="og:title" content="Evening Report">
</head>
<body>
<article>
<h1>Headline</h1>
<p>Enough body text for the extractor to consider this a content page.</p>
</article>
</body>
</html>`

		cleaner := trafilatura.NewCleaner()
		result, err := cleaner.Clean(html)

		require.NoError(t, err)
		assert.NotEmpty(t, result.Title)
		assert.NotEqual(t, frontpage.NoTitle, result.Title)
	})

	t.Run("returns error for empty input", func(t *testing.T) {
		t.Parallel()

		cleaner := trafilatura.NewCleaner()
		_, err := cleaner.Clean("")

		require.Error(t, err)
		assert.Equal(t, frontpage.EINVALID, frontpage.ErrorCode(err))
	})
}
