package pdf_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/articulos-centros/internal/domain/entity"
	"github.com/jhoicas/articulos-centros/internal/infrastructure/pdf"
)

func TestGenerateListing_ProducesPDF(t *testing.T) {
	rows := []entity.CenterExportRow{
		{ArticleID: "A1", Description: "Tornillo", EAN: "8400000000001", Price: "12.50", Stock: 5},
		{ArticleID: "A2", Description: "Tuerca sin precio", Stock: 0},
	}
	out, err := pdf.NewMarotoListingGenerator().GenerateListing(
		context.Background(), entity.CenterCalvia, rows, time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC),
	)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")), "debe empezar con la firma PDF")
}

func TestGenerateListing_EmptyCatalog(t *testing.T) {
	out, err := pdf.NewMarotoListingGenerator().GenerateListing(
		context.Background(), entity.CenterColl, nil, time.Now(),
	)
	require.NoError(t, err)
	assert.NotEmpty(t, out)
}
