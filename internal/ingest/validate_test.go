package ingest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/releve-dev/releve/internal/dialect"
	"github.com/releve-dev/releve/internal/model"
	"github.com/releve-dev/releve/internal/schema"
)

func TestCheckCleanRecords(t *testing.T) {
	records := []model.Record{
		{BookingDate: "2024-01-01", Debit: amount("10")},
		{BookingDate: "", Credit: amount("5")},
	}
	assert.Empty(t, Check(records))
}

func TestCheckNegativeAmounts(t *testing.T) {
	records := []model.Record{
		{BookingDate: "2024-01-01", Debit: amount("-10")},
		{BookingDate: "2024-01-02", Credit: amount("-5")},
	}
	findings := Check(records)
	require.Len(t, findings, 2)
	assert.Equal(t, 2, findings[0].Row)
	assert.Equal(t, schema.Debit, findings[0].Field)
	assert.Equal(t, 3, findings[1].Row)
	assert.Equal(t, schema.Credit, findings[1].Field)
}

func TestCheckNonISODate(t *testing.T) {
	records := []model.Record{{BookingDate: "pas une date"}}
	findings := Check(records)
	require.Len(t, findings, 1)
	assert.Equal(t, schema.BookingDate, findings[0].Field)
	assert.Contains(t, findings[0].String(), "row 2")
	assert.Contains(t, findings[0].String(), "pas une date")
}

func TestCheckPermissiveBothSides(t *testing.T) {
	// Both sides populated from separate source columns is allowed and
	// reports nothing.
	records := []model.Record{{BookingDate: "2024-01-01", Debit: amount("10"), Credit: amount("10")}}
	assert.Empty(t, Check(records))
}

func TestScan(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.csv"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "B.CSV"), []byte("xy"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub.csv"), 0o755))

	files, err := Scan(dir)
	require.NoError(t, err)
	require.Len(t, files, 2)
	names := []string{files[0].Name, files[1].Name}
	assert.Contains(t, names, "a.csv")
	assert.Contains(t, names, "B.CSV")
	for _, f := range files {
		assert.NotZero(t, f.Size)
		assert.Equal(t, filepath.Join(dir, f.Name), f.Path)
	}
}

func TestScanMissingDir(t *testing.T) {
	files, err := Scan(filepath.Join(t.TempDir(), "nope"))
	require.NoError(t, err)
	assert.Nil(t, files)
}

func TestInspect(t *testing.T) {
	path := writeTemp(t, "Date Valeur;Libellé;Montant\n01/01/2024;Loyer;-800\n")

	insp, err := Inspect(path, dialect.Detect(path))
	require.NoError(t, err)
	assert.Equal(t, ';', insp.Dialect.Delimiter)
	assert.Equal(t, []string{"Date Valeur", "Libellé", "Montant"}, insp.Headers)
	assert.Equal(t, "Date Valeur", insp.Mapping[schema.BookingDate])
	assert.Equal(t, "Libellé", insp.Mapping[schema.ShortLabel])
	assert.Equal(t, "Montant", insp.Mapping[schema.Amount])
	require.Len(t, insp.Records, 1)
}

func TestInspectBadFile(t *testing.T) {
	path := writeTemp(t, "")
	_, err := Inspect(path, dialect.Detect(path))
	var ferr *FormatError
	assert.ErrorAs(t, err, &ferr)
}
