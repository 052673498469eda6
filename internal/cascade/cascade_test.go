package cascade

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Andylue11/RFMS-PDF-Xtracr--sub000/internal/entity"
	"github.com/Andylue11/RFMS-PDF-Xtracr--sub000/internal/textextract"
)

type stubBackend struct {
	name  string
	text  string
	calls int
	panic bool
}

func (s *stubBackend) Name() string { return s.name }

func (s *stubBackend) ExtractText(context.Context, string) string {
	s.calls++
	if s.panic {
		panic("backend bug")
	}
	return s.text
}

func okProbe(string, *slog.Logger) (textextract.FileInfo, error) {
	return textextract.FileInfo{MIME: "application/pdf", Pages: 1}, nil
}

func newCascade(backends ...textextract.Backend) *Cascade {
	return New(Config{Backends: backends, Probe: okProbe}, nil)
}

const janeDoe = "Client: Jane Doe\nPBG-18191-18039\nScope of Works / Notes: Supply and install carpet\n\n" +
	"Total AUD $3,200.00\nSupervisor:\nTom Hill\n0412345678\n"

func TestEndToEndProfileScenario(t *testing.T) {
	b1 := &stubBackend{name: "b1", text: janeDoe}
	rec := newCascade(b1).Run(context.Background(), "po.pdf", "PROFILE BUILD GROUP")

	assert.Equal(t, "Jane Doe", rec.CustomerName)
	assert.Equal(t, "Jane", rec.FirstName)
	assert.Equal(t, "Doe", rec.LastName)
	assert.Equal(t, "PBG-18191-18039", rec.PONumber)
	assert.Equal(t, 3200.0, rec.DollarValue)
	assert.Equal(t, "Tom Hill", rec.SupervisorName)
	assert.Equal(t, "0412345678", rec.SupervisorMobile)
	assert.Equal(t, "Tom Hill 0412345678", rec.JobNumber)
	assert.Equal(t, "Profile Build Group", rec.BuilderType)
	assert.Equal(t, "b1", rec.ExtractionBackend)
	assert.Empty(t, rec.Error)
	require.NoError(t, rec.Validate())
}

func TestEscalatesUntilEssentialFields(t *testing.T) {
	b1 := &stubBackend{name: "b1", text: "garbled \x00 glyphs"}
	b2 := &stubBackend{name: "b2", text: "Purchase order PBG-18191-18039"}
	b3 := &stubBackend{name: "b3", text: "Client: Someone Else"}

	rec := newCascade(b1, b2, b3).Run(context.Background(), "po.pdf", "")

	assert.Equal(t, "PBG-18191-18039", rec.PONumber)
	assert.Equal(t, "b2", rec.ExtractionBackend)
	assert.Empty(t, rec.CustomerName, "record is rebuilt from the second backend's text only")
	assert.Equal(t, 1, b1.calls)
	assert.Equal(t, 1, b2.calls)
	assert.Equal(t, 0, b3.calls)
}

func TestStopsAtFirstBackend(t *testing.T) {
	b1 := &stubBackend{name: "b1", text: janeDoe}
	b2 := &stubBackend{name: "b2", text: janeDoe}
	newCascade(b1, b2).Run(context.Background(), "po.pdf", "")
	assert.Equal(t, 1, b1.calls)
	assert.Equal(t, 0, b2.calls)
}

func TestExhaustedCascade(t *testing.T) {
	t.Run("no text at all", func(t *testing.T) {
		rec := newCascade(&stubBackend{name: "b1"}, &stubBackend{name: "b2"}, &stubBackend{name: "b3"}).
			Run(context.Background(), "po.pdf", "")
		assert.Equal(t, entity.NewRecord(), rec)
	})

	t.Run("keeps last produced record", func(t *testing.T) {
		b1 := &stubBackend{name: "b1", text: "nothing useful here"}
		rec := newCascade(b1, &stubBackend{name: "b2"}, &stubBackend{name: "b3"}).
			Run(context.Background(), "po.pdf", "")
		assert.Equal(t, "b1", rec.ExtractionBackend)
		assert.Equal(t, "Generic", rec.BuilderType)
		assert.False(t, HasEssentialFields(rec))
		assert.Empty(t, rec.Error, "finding nothing is not an error")
	})
}

func TestProbeFailureSetsError(t *testing.T) {
	b1 := &stubBackend{name: "b1", text: janeDoe}
	c := New(Config{
		Backends: []textextract.Backend{b1},
		Probe: func(string, *slog.Logger) (textextract.FileInfo, error) {
			return textextract.FileInfo{}, errors.New("open po.pdf: permission denied")
		},
	}, nil)

	rec := c.Run(context.Background(), "po.pdf", "")
	assert.Equal(t, "open po.pdf: permission denied", rec.Error)
	assert.Equal(t, 0, b1.calls)
	require.NoError(t, rec.Validate())
}

func TestPanicIsReported(t *testing.T) {
	rec := newCascade(&stubBackend{name: "b1", panic: true}).Run(context.Background(), "po.pdf", "")
	assert.Contains(t, rec.Error, "backend bug")
	require.NoError(t, rec.Validate())
}

func TestHintPrecedenceWithWarning(t *testing.T) {
	text := "To: Rizon Group\nPurchase Order P123456\nClient: Bob Smith\n"
	rec := newCascade(&stubBackend{name: "b1", text: text}).Run(context.Background(), "po.pdf", "Profile Build Group")

	assert.Equal(t, "Profile Build Group", rec.BuilderType)
	assert.Equal(t, "Bob Smith", rec.CustomerName)
	assert.NotEmpty(t, rec.BuilderMismatchWarning)
	assert.Equal(t, "Rizon Group", rec.DetectedBuilder)
}

func TestProvisionalThroughCascade(t *testing.T) {
	text := "PROVISIONAL\n" + janeDoe
	rec := newCascade(&stubBackend{name: "b1", text: text}).Run(context.Background(), "po.pdf", "")
	assert.Equal(t, "PBG-18191-18039-Prov", rec.PONumber)
}

func TestIdempotent(t *testing.T) {
	text := janeDoe + "Phone: 07 3344 5566\nTenant: Sam 0400 111 222\nemail jane@example.com\n"
	c := newCascade(&stubBackend{name: "b1", text: text})

	first, err := json.Marshal(c.Run(context.Background(), "po.pdf", "PBG"))
	require.NoError(t, err)
	second, err := json.Marshal(c.Run(context.Background(), "po.pdf", "PBG"))
	require.NoError(t, err)
	assert.Equal(t, string(first), string(second))
}

func TestEveryOutcomeMatchesSchema(t *testing.T) {
	inputs := []string{"", "x", janeDoe, "Total: $-12\nTotal: abc", "0400111222 0400111222 0400111222"}
	for _, in := range inputs {
		rec := newCascade(&stubBackend{name: "b1", text: in}).Run(context.Background(), "po.pdf", "")
		assert.NoError(t, rec.Validate(), in)
		assert.GreaterOrEqual(t, rec.DollarValue, 0.0, in)
	}
}

func TestStageString(t *testing.T) {
	assert.Equal(t, "mupdf", StageMuPDF.String())
	assert.Equal(t, "poppler", StagePoppler.String())
	assert.Equal(t, "purepdf", StagePure.String())
	assert.Equal(t, "done", StageDone.String())
}
