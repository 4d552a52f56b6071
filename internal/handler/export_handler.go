package handler

import (
	"path/filepath"

	"go-apparel-stock/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
)

type ExportHandler struct {
	service service.ExportService
	dir     string
	log     zerolog.Logger
}

func NewExportHandler(s service.ExportService, dir string, log zerolog.Logger) *ExportHandler {
	return &ExportHandler{service: s, dir: dir, log: log}
}

// GetSnapshot returns the aggregated rows as JSON, the preview the UI shows
// before exporting.
func (h *ExportHandler) GetSnapshot(c *fiber.Ctx) error {
	rows, err := h.service.Snapshot()
	if err != nil {
		return fail(c, h.log, err)
	}
	return c.JSON(rows)
}

// DownloadCSV persists the snapshot to the export directory first, so the file
// stays retrievable at a known path even if the download is abandoned.
func (h *ExportHandler) DownloadCSV(c *fiber.Ctx) error {
	path, err := h.service.WriteFile(h.dir)
	if err != nil {
		return fail(c, h.log, err)
	}
	return c.Download(path, filepath.Base(path))
}
