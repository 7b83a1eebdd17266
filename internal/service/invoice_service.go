package service

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jung-kurt/gofpdf"

	"github.com/storefront-next/internal/config"
	"github.com/storefront-next/internal/logger"
	"github.com/storefront-next/internal/models"
)

// InvoiceService 订单发票 PDF 的生成与归档
type InvoiceService struct {
	orders *OrderService
	cfg    *config.Config
}

// NewInvoiceService 创建发票服务
func NewInvoiceService(orders *OrderService, cfg *config.Config) *InvoiceService {
	return &InvoiceService{orders: orders, cfg: cfg}
}

// Render 为订单生成发票 PDF，带归属校验。
// 返回 PDF 字节与下载文件名。归档写盘失败只记日志。
func (s *InvoiceService) Render(ctx context.Context, userID, orderID uint) ([]byte, string, error) {
	order, err := s.orders.GetByUser(ctx, userID, orderID)
	if err != nil {
		return nil, "", err
	}

	data, err := s.build(order)
	if err != nil {
		return nil, "", fmt.Errorf("render invoice: %w", err)
	}

	filename := fmt.Sprintf("invoice-%d.pdf", order.ID)
	s.archive(filename, data)

	return data, filename, nil
}

// build 渲染发票内容：标题、逐行商品、分隔线、总价。
func (s *InvoiceService) build(order *models.Order) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 20)
	pdf.CellFormat(0, 12, fmt.Sprintf("Invoice #%d", order.ID), "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 6, order.CreatedAt.Format("2006-01-02 15:04"), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, order.UserEmail, "", 1, "L", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "", 12)
	for _, item := range order.Items {
		line := fmt.Sprintf("%s - $%s x %d", item.Title, item.UnitPrice.String(), item.Quantity)
		pdf.CellFormat(0, 8, line, "", 1, "L", false, 0, "")
	}

	pdf.Ln(2)
	pdf.CellFormat(0, 4, "---", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 10, fmt.Sprintf("Total: $%s", order.TotalAmount.String()), "", 1, "L", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// archive 把发票副本落盘，失败不影响下载
func (s *InvoiceService) archive(filename string, data []byte) {
	if s.cfg.Invoice.Dir == "" {
		return
	}
	if err := os.MkdirAll(s.cfg.Invoice.Dir, 0o755); err != nil {
		logger.Warnw("invoice_archive_failed", "filename", filename, "error", err)
		return
	}
	path := filepath.Join(s.cfg.Invoice.Dir, filename)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		logger.Warnw("invoice_archive_failed", "filename", filename, "error", err)
		return
	}
	logger.Infow("invoice_archived", "path", path)
}
