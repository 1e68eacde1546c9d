package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCommand()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func writeFixture(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const frenchFixture = "Date;Libellé;Catégorie;Sous-catégorie;Montant\n" +
	"01/01/2024;Loyer;Logement;Loyer;-800\n" +
	"02/01/2024;Salaire;Revenus;;2500,00\n" +
	"03/01/2024;Courses;Alimentation;Supermarché;(45,10)\n"

func TestConvertCommand(t *testing.T) {
	in := writeFixture(t, "in.csv", frenchFixture)
	out := filepath.Join(t.TempDir(), "out.csv")

	stdout, err := execute(t, "convert", in, out)
	require.NoError(t, err)
	assert.Contains(t, stdout, "Converted 3 records")

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "booking_date,"))
	assert.Contains(t, string(data), "800.00")
	assert.Contains(t, string(data), "2024-01-01")
}

func TestConvertCommandRowError(t *testing.T) {
	in := writeFixture(t, "in.csv", "Date;Libellé;Montant\n01/01/2024;ok;1\n02/01/2024;bad \"quote;2\n")
	out := filepath.Join(t.TempDir(), "out.csv")

	_, err := execute(t, "convert", in, out)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "row 3")

	_, statErr := os.Stat(out)
	assert.True(t, os.IsNotExist(statErr), "failed import must not write the output file")
}

func TestSummaryCommandByCategory(t *testing.T) {
	in := writeFixture(t, "in.csv", frenchFixture)

	stdout, err := execute(t, "summary", in)
	require.NoError(t, err)
	assert.Contains(t, stdout, "AGRÉGATION PAR CATÉGORIE")
	assert.Contains(t, stdout, "Logement")
	assert.Contains(t, stdout, "Revenus")
	assert.Contains(t, stdout, "TOTAL")
}

func TestSummaryCommandBySubcategory(t *testing.T) {
	in := writeFixture(t, "in.csv", frenchFixture)

	stdout, err := execute(t, "summary", in, "--by", "subcategory")
	require.NoError(t, err)
	assert.Contains(t, stdout, "AGRÉGATION PAR SOUS-CATÉGORIE")
	assert.Contains(t, stdout, "Supermarché")
	assert.Contains(t, stdout, "Non spécifié", "records without subcategory use the fallback label")
}

func TestSummaryCommandFull(t *testing.T) {
	in := writeFixture(t, "in.csv", frenchFixture)

	stdout, err := execute(t, "summary", in, "--by", "full")
	require.NoError(t, err)
	assert.Contains(t, stdout, "TOTAL GÉNÉRAL")
	assert.Contains(t, stdout, "  - Loyer")
}

func TestSummaryCommandBadGrouping(t *testing.T) {
	in := writeFixture(t, "in.csv", frenchFixture)

	_, err := execute(t, "summary", in, "--by", "nope")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown grouping")
}

func TestSummaryCommandCustomLabels(t *testing.T) {
	in := writeFixture(t, "in.csv", frenchFixture)
	cfgPath := writeFixture(t, "releve.yaml", "labels:\n  uncategorized: Autres\n  unspecified: Divers\n")

	stdout, err := execute(t, "summary", in, "--by", "subcategory", "--config", cfgPath)
	require.NoError(t, err)
	assert.Contains(t, stdout, "Divers")
	assert.NotContains(t, stdout, "Non spécifié")
}

func TestInspectCommand(t *testing.T) {
	in := writeFixture(t, "in.csv", frenchFixture)

	stdout, err := execute(t, "inspect", in)
	require.NoError(t, err)
	assert.Contains(t, stdout, "semicolon (;)")
	assert.Contains(t, stdout, "Records:   3")
	assert.Contains(t, stdout, `-> "Date"`)
	assert.Contains(t, stdout, `-> "Montant"`)
	assert.Contains(t, stdout, "-> (absent)")
}

func TestCheckCommandClean(t *testing.T) {
	in := writeFixture(t, "in.csv", frenchFixture)

	stdout, err := execute(t, "check", in)
	require.NoError(t, err)
	assert.Contains(t, stdout, "3 records, no findings")
}

func TestCheckCommandFindings(t *testing.T) {
	in := writeFixture(t, "in.csv", "Date;Libellé;Débit\n01/01/2024;X;-5,00\npas une date;Y;3,00\n")

	stdout, err := execute(t, "check", in)
	require.NoError(t, err, "findings are advisory, not failures")
	assert.Contains(t, stdout, "negative debit")
	assert.Contains(t, stdout, "pas une date")
	assert.Contains(t, stdout, "2 records, 2 findings")
}

func TestListCommand(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.csv"), []byte("x\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.txt"), []byte("x\n"), 0o644))

	stdout, err := execute(t, "list", dir)
	require.NoError(t, err)
	assert.Contains(t, stdout, "a.csv")
	assert.NotContains(t, stdout, "b.txt")
}

func TestListCommandEmpty(t *testing.T) {
	dir := t.TempDir()
	stdout, err := execute(t, "list", dir)
	require.NoError(t, err)
	assert.Contains(t, stdout, "No CSV files")
}

func TestConvertCommandMissingArgs(t *testing.T) {
	_, err := execute(t, "convert", "only-one.csv")
	assert.Error(t, err)
}

func TestConfigFallbackDelimiter(t *testing.T) {
	// The trailing pipe makes the per-line counts inconsistent, so the
	// sniffer gives up and the configured fallback has to carry the file.
	in := writeFixture(t, "in.csv", "Date|Libellé|Montant\n01/01/2024|X|1\n02/01/2024|Y|2|\n")
	cfgPath := writeFixture(t, "releve.yaml", "fallback_delimiter: \"|\"\n")

	stdout, err := execute(t, "summary", in, "--config", cfgPath, "--by", "category")
	require.NoError(t, err)
	assert.Contains(t, stdout, "+3.00")
}
