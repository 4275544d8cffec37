package service

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	helper "rbofficial_backend/internals/helpers"
	"rbofficial_backend/internals/features/orders/model"
)

const salesSheet = "Laporan Penjualan"

var detailHeaders = []string{
	"Order Number", "Tipe", "Nama Lengkap", "WhatsApp", "Email",
	"Instagram", "Items", "Total Harga", "Status", "Tanggal Order",
}

// RenderSalesReportExcel merender tiga blok (detail PO, detail OTS, ringkasan)
// jadi satu workbook xlsx.
func RenderSalesReportExcel(rep SalesReport, generatedAt time.Time) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	f.SetSheetName("Sheet1", salesSheet)

	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, err
	}
	sectionStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true, Size: 12}})
	if err != nil {
		return nil, err
	}

	row := 1
	setRow := func(values []interface{}) error {
		cell, err := excelize.CoordinatesToCellName(1, row)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(salesSheet, cell, &values); err != nil {
			return err
		}
		row++
		return nil
	}
	styleRow := func(r, cols, style int) {
		from, _ := excelize.CoordinatesToCellName(1, r)
		to, _ := excelize.CoordinatesToCellName(cols, r)
		_ = f.SetCellStyle(salesSheet, from, to, style)
	}

	if err := setRow([]interface{}{fmt.Sprintf("Laporan Penjualan — dibuat %s WIB", helper.FormatWIB(generatedAt))}); err != nil {
		return nil, err
	}
	styleRow(row-1, 1, sectionStyle)
	row++

	writeDetail := func(title string, orders []model.OrderModel, tipe string) error {
		if err := setRow([]interface{}{title}); err != nil {
			return err
		}
		styleRow(row-1, 1, sectionStyle)

		hdr := make([]interface{}, len(detailHeaders))
		for i, h := range detailHeaders {
			hdr[i] = h
		}
		if err := setRow(hdr); err != nil {
			return err
		}
		styleRow(row-1, len(detailHeaders), headerStyle)

		for _, o := range orders {
			if err := setRow([]interface{}{
				o.OrderNumber,
				tipe,
				o.OrderCustomerName,
				o.OrderWhatsapp,
				o.OrderEmail,
				o.OrderInstagram,
				JoinItems(o.Items),
				o.OrderTotalHarga,
				o.OrderStatus,
				helper.FormatWIB(o.CreatedAt),
			}); err != nil {
				return err
			}
		}
		row++ // baris kosong pemisah antar blok
		return nil
	}

	if err := writeDetail("PRE-ORDER", rep.PreOrders, "Pre-Order"); err != nil {
		return nil, err
	}
	if err := writeDetail("ON THE SPOT", rep.OnTheSpot, "OTS"); err != nil {
		return nil, err
	}

	// ===== Blok ringkasan =====
	if err := setRow([]interface{}{"RINGKASAN PENJUALAN"}); err != nil {
		return nil, err
	}
	styleRow(row-1, 1, sectionStyle)

	if err := setRow([]interface{}{"Item", "Total Qty", "Total Pendapatan"}); err != nil {
		return nil, err
	}
	styleRow(row-1, 3, headerStyle)

	for _, s := range rep.Summary {
		if err := setRow([]interface{}{s.Label, s.Quantity, helper.FormatRupiah(s.Revenue)}); err != nil {
			return nil, err
		}
	}
	if err := setRow([]interface{}{"TOTAL", rep.TotalQuantity, helper.FormatRupiah(rep.TotalRevenue)}); err != nil {
		return nil, err
	}
	styleRow(row-1, 3, headerStyle)

	_ = f.SetColWidth(salesSheet, "A", "A", 22)
	_ = f.SetColWidth(salesSheet, "B", "F", 18)
	_ = f.SetColWidth(salesSheet, "G", "G", 45)
	_ = f.SetColWidth(salesSheet, "H", "J", 18)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ExportFilename menyematkan timestamp pembuatan di nama file unduhan
func ExportFilename(generatedAt time.Time) string {
	return fmt.Sprintf("laporan-penjualan-%s.xlsx", generatedAt.In(helper.WIB).Format("20060102-150405"))
}
