package httpapi

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/tate-it/energy-toolbox-sub003/internal/catalog"
	"github.com/tate-it/energy-toolbox-sub003/internal/engine"
	"github.com/tate-it/energy-toolbox-sub003/internal/offer"
	"github.com/tate-it/energy-toolbox-sub003/internal/sii"
	"github.com/tate-it/energy-toolbox-sub003/internal/wizard"
)

// maxBodyBytes caps the accepted request body. A full offer record is a
// few kilobytes; anything near the cap is not a wizard snapshot.
const maxBodyBytes = 1 << 20

// Handlers serves the validation API over a shared engine.
type Handlers struct {
	engine *engine.Engine
	logger *zap.Logger
}

func NewHandlers(e *engine.Engine, logger *zap.Logger) *Handlers {
	return &Handlers{engine: e, logger: logger}
}

type fieldInfo struct {
	ID       catalog.FieldID `json:"id"`
	Section  offer.Section   `json:"section"`
	Kind     catalog.Kind    `json:"kind"`
	Repeated bool            `json:"repeated"`
	Enum     []string        `json:"enum,omitempty"`
}

type stepInfo struct {
	Step    wizard.Step   `json:"step"`
	Section offer.Section `json:"section"`
}

type validateResponse struct {
	Clean    bool                                    `json:"clean"`
	Fields   []engine.FieldResult                    `json:"fields"`
	Sections map[offer.Section]engine.SectionSummary `json:"sections"`
}

// Health reports liveness.
func (h *Handlers) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Fields lists the field catalog so clients can build forms without
// hardcoding ids.
func (h *Handlers) Fields(c *gin.Context) {
	shapes := catalog.All()
	out := make([]fieldInfo, 0, len(shapes))
	for _, s := range shapes {
		out = append(out, fieldInfo{
			ID:       s.ID,
			Section:  s.Section,
			Kind:     s.Kind,
			Repeated: s.Repeated,
			Enum:     s.Enum,
		})
	}
	c.JSON(http.StatusOK, gin.H{"fields": out})
}

// Steps lists the wizard steps in order with the section each one edits.
func (h *Handlers) Steps(c *gin.Context) {
	out := make([]stepInfo, 0, wizard.StepCount)
	for s := wizard.Step(1); s <= wizard.StepCount; s++ {
		sec, _ := wizard.SectionFor(s)
		out = append(out, stepInfo{Step: s, Section: sec})
	}
	c.JSON(http.StatusOK, gin.H{"steps": out})
}

// Validate runs a full-record validation pass over the posted snapshot.
// An optional ?section= query narrows the scope to one section.
func (h *Handlers) Validate(c *gin.Context) {
	o, ok := h.readOffer(c)
	if !ok {
		return
	}

	scope := engine.FullRecord()
	if sec := c.Query("section"); sec != "" {
		if !knownSection(offer.Section(sec)) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown section: " + sec})
			return
		}
		scope = engine.SingleSection(offer.Section(sec))
	}

	verdict := h.engine.Validate(o, scope)
	c.JSON(http.StatusOK, validateResponse{
		Clean:    verdict.Clean(),
		Fields:   verdict.Ordered(),
		Sections: verdict.Sections,
	})
}

// CanAdvance answers the step gate for the posted snapshot.
func (h *Handlers) CanAdvance(c *gin.Context) {
	stepNum, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "step id must be a number"})
		return
	}

	o, ok := h.readOffer(c)
	if !ok {
		return
	}

	gate, err := wizard.CanAdvance(h.engine, o, wizard.Step(stepNum))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gate)
}

// Export validates the snapshot and, when clean, returns the regulatory
// XML. A dirty record comes back 409 with the blocking verdict.
func (h *Handlers) Export(c *gin.Context) {
	o, ok := h.readOffer(c)
	if !ok {
		return
	}

	out, verdict, err := sii.Export(h.engine, o)
	if errors.Is(err, sii.ErrNotExportable) {
		c.JSON(http.StatusConflict, validateResponse{
			Clean:    false,
			Fields:   verdict.Ordered(),
			Sections: verdict.Sections,
		})
		return
	}
	if err != nil {
		h.logger.Error("export failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "export failed"})
		return
	}

	name := sii.FileName(o, c.Query("description"))
	c.Header("Content-Disposition", `attachment; filename="`+name+`"`)
	c.Data(http.StatusOK, "application/xml", out)
}

func (h *Handlers) readOffer(c *gin.Context) (*offer.Offer, bool) {
	body, err := io.ReadAll(io.LimitReader(c.Request.Body, maxBodyBytes))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "read body: " + err.Error()})
		return nil, false
	}
	o, err := offer.Decode(body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return nil, false
	}
	return o, true
}

func knownSection(sec offer.Section) bool {
	for _, s := range offer.Sections {
		if s == sec {
			return true
		}
	}
	return false
}
