package pipeline

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/copyops/copycheck/pkg/doc"
	"github.com/copyops/copycheck/pkg/rules"
)

func TestProcessBatch_ResultsInInputOrder(t *testing.T) {
	docs := []*doc.Document{
		plainDoc("I have 3 children."),
		plainDoc("Meeting at 3:00 PM"),
		plainDoc("Call our N.Y. office"),
	}

	results, err := ProcessBatch(context.Background(), docs, rules.Default(), Config{})
	require.NoError(t, err)
	require.Len(t, results, 3)

	assert.Equal(t, "I have three children.", results[0].Doc.Text())
	assert.Equal(t, "Meeting at 3 pm", results[1].Doc.Text())
	assert.Equal(t, "Call our NY office", results[2].Doc.Text())
}

func TestProcessBatch_SingleWorker(t *testing.T) {
	docs := []*doc.Document{
		plainDoc("Open 8 AM-5 PM"),
		plainDoc("Shop & save"),
	}

	results, err := ProcessBatch(context.Background(), docs, rules.Default(), Config{Workers: 1})
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "Open 8 am–5 pm", results[0].Doc.Text())
	assert.Equal(t, "Shop and save", results[1].Doc.Text())
}

func TestProcessBatch_Empty(t *testing.T) {
	results, err := ProcessBatch(context.Background(), nil, rules.Default(), Config{})
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestProcessBatch_CancelledBeforeStart(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	docs := []*doc.Document{plainDoc("one"), plainDoc("two")}
	results, err := ProcessBatch(ctx, docs, rules.Default(), Config{})

	assert.ErrorIs(t, err, context.Canceled)
	require.Len(t, results, 2)
	for _, r := range results {
		assert.Nil(t, r)
	}
}
