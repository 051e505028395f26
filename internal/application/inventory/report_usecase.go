package inventory

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/vetcarepro/vetstock-api/internal/domain/repository"
)

// StockReportLine fila de la tabla del reporte (un producto en o bajo su punto de reorden).
type StockReportLine struct {
	SKU          string
	ProductName  string
	CurrentStock int
	ReorderPoint int
	Price        decimal.Decimal
}

// StockReportData datos que consume el generador de PDF.
type StockReportData struct {
	GeneratedAt time.Time
	Summary     repository.InventorySummary
	Lines       []StockReportLine
}

// StockReportPDFGenerator puerto de generación del reporte (implementado en infrastructure/pdf).
type StockReportPDFGenerator interface {
	GenerateStockReport(ctx context.Context, data *StockReportData) ([]byte, error)
}

// ReportUseCase arma el reporte de stock y delega el render al generador.
type ReportUseCase struct {
	invRepo repository.InventoryRepository
	pdfGen  StockReportPDFGenerator
}

// NewReportUseCase construye el caso de uso del reporte.
func NewReportUseCase(invRepo repository.InventoryRepository, pdfGen StockReportPDFGenerator) *ReportUseCase {
	return &ReportUseCase{invRepo: invRepo, pdfGen: pdfGen}
}

// GenerateStockReport junta el resumen del inventario y los productos bajo
// punto de reorden, y devuelve los bytes del PDF.
func (uc *ReportUseCase) GenerateStockReport(ctx context.Context) ([]byte, error) {
	summary, err := uc.invRepo.Summary(ctx)
	if err != nil {
		return nil, fmt.Errorf("report: resumen de inventario: %w", err)
	}
	items, err := uc.invRepo.ListBelowReorderPoint(ctx)
	if err != nil {
		return nil, fmt.Errorf("report: productos bajo reorden: %w", err)
	}

	data := &StockReportData{
		GeneratedAt: time.Now(),
		Summary:     *summary,
	}
	for _, it := range items {
		data.Lines = append(data.Lines, StockReportLine{
			SKU:          it.SKU,
			ProductName:  it.ProductName,
			CurrentStock: it.CurrentStock,
			ReorderPoint: it.ReorderPoint,
			Price:        it.Price,
		})
	}
	return uc.pdfGen.GenerateStockReport(ctx, data)
}
