package sitesearch_test

import (
	"testing"

	"github.com/fwojciec/sitesearch"
	"github.com/stretchr/testify/assert"
)

func TestFormatResults(t *testing.T) {
	t.Parallel()

	t.Run("formats hits with title id and score", func(t *testing.T) {
		t.Parallel()

		results := []sitesearch.Result{
			{ID: "python.html", Title: "Python Guide", Score: 1.2345},
			{ID: "java.html", Title: "Java Guide", Score: 0.5},
		}

		out := sitesearch.FormatResults(results)

		expected := "Found 2 result(s):\n" +
			"Python Guide (python.html) - Score: 1.2345\n" +
			"Java Guide (java.html) - Score: 0.5000"
		assert.Equal(t, expected, out)
	})

	t.Run("falls back to the ID when title is empty", func(t *testing.T) {
		t.Parallel()

		results := []sitesearch.Result{
			{ID: "a.html", Score: 0.1},
		}

		out := sitesearch.FormatResults(results)

		assert.Equal(t, "Found 1 result(s):\na.html (a.html) - Score: 0.1000", out)
	})

	t.Run("reports when nothing matched", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "No results found.", sitesearch.FormatResults(nil))
	})
}
