package search

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/policybin/schema"
)

func testCatalog() schema.Catalog {
	consent := &schema.Bin{Indicator: "14.1", Title: "Informed Consent", Category: "Patient Care"}
	consent.Append(&schema.Document{ID: "c1", FileName: "consent form.pdf", Status: schema.StatusApproved, Content: "Patients sign the informed consent before simulation."})
	peer := &schema.Bin{Indicator: "13.1", Title: "Peer Review", Category: "Quality"}
	peer.Append(
		&schema.Document{ID: "p1", FileName: "chart rounds.pdf", Status: schema.StatusPending, Content: "Weekly chart rounds and peer review of contours."},
		&schema.Document{ID: "p2", FileName: "empty.pdf", Status: schema.StatusPending},
	)
	return schema.Catalog{consent, peer, {Indicator: "1.3", Title: "Previous Treatment"}}
}

func TestSearch(t *testing.T) {
	ctx := context.Background()
	hits, err := Search(ctx, testCatalog(), "contours", 0)
	require.NoError(t, err)
	require.Len(t, hits, 1)
	assert.Equal(t, "p1", hits[0].DocumentID)
	assert.Equal(t, "13.1", hits[0].Indicator)
	assert.Equal(t, "chart rounds.pdf", hits[0].FileName)
	assert.Greater(t, hits[0].Score, 0.0)

	hits, err = Search(ctx, testCatalog(), "consent", 0)
	require.NoError(t, err)
	require.NotEmpty(t, hits)
	assert.Equal(t, "c1", hits[0].DocumentID)
	assert.Equal(t, "approved", hits[0].Status)
}

func TestSearch_TitleAndLimit(t *testing.T) {
	hits, err := Search(context.Background(), testCatalog(), "peer review", 1)
	require.NoError(t, err)
	require.Len(t, hits, 1)
	assert.Equal(t, "13.1", hits[0].Indicator)
}

func TestSearch_Empty(t *testing.T) {
	hits, err := Search(context.Background(), testCatalog(), "   ", 5)
	require.NoError(t, err)
	assert.Empty(t, hits)

	hits, err = Search(context.Background(), schema.Catalog{}, "consent", 5)
	require.NoError(t, err)
	assert.Empty(t, hits)

	hits, err = Search(context.Background(), testCatalog(), "brachytherapy", 5)
	require.NoError(t, err)
	assert.Empty(t, hits)
}
