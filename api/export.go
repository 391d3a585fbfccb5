package api

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"fintrack/database"
	"fintrack/middleware"
	"fintrack/models"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

// ExportHandler 导出处理器
type ExportHandler struct{}

// NewExportHandler 创建导出处理器
func NewExportHandler() *ExportHandler {
	return &ExportHandler{}
}

// exportRow 导出用的交易行
type exportRow struct {
	ID          uint            `json:"id"`
	AccountName string          `json:"account_name"`
	BudgetName  *string         `json:"budget_name"`
	Type        string          `json:"type"`
	Amount      decimal.Decimal `json:"amount"`
	Remark      string          `json:"remark"`
	CreatedAt   time.Time       `json:"created_at"`
}

// queryExportRows 查询当前用户全部交易，带账户与预算名称
func queryExportRows(userID uint) ([]exportRow, error) {
	rows := make([]exportRow, 0)
	err := database.DB.Model(&models.Trade{}).
		Select("trades.id, accounts.name AS account_name, budgets.name AS budget_name, trades.type, trades.amount, trades.remark, trades.created_at").
		Joins("JOIN accounts ON accounts.id = trades.account_id AND accounts.deleted_at IS NULL").
		Joins("LEFT JOIN budgets ON budgets.id = trades.budget_id AND budgets.deleted_at IS NULL").
		Where("accounts.user_id = ?", userID).
		Order("trades.id ASC").
		Scan(&rows).Error
	return rows, err
}

func budgetNameOrEmpty(name *string) string {
	if name == nil {
		return ""
	}
	return *name
}

// ExportCSV 导出交易记录为 CSV
// @Summary 导出交易记录 CSV
// @Description 导出当前用户的全部交易记录为 CSV 文件
// @Tags 导出
// @Produce text/csv
// @Security BearerAuth
// @Success 200 {file} file "CSV 文件"
// @Failure 401 {object} Response "未授权"
// @Router /api/v1/export/csv [get]
func (h *ExportHandler) ExportCSV(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	rows, err := queryExportRows(userID)
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "查询数据失败"))
		return
	}

	buf := new(bytes.Buffer)
	// 添加 BOM 以支持 Excel 中文显示
	buf.WriteString("\xEF\xBB\xBF")

	writer := csv.NewWriter(buf)
	headers := []string{"ID", "账户", "预算", "类型", "金额", "备注", "时间"}
	if err := writer.Write(headers); err != nil {
		InternalError(c, "生成 CSV 失败")
		return
	}

	for _, row := range rows {
		record := []string{
			fmt.Sprintf("%d", row.ID),
			row.AccountName,
			budgetNameOrEmpty(row.BudgetName),
			row.Type,
			row.Amount.StringFixed(2),
			row.Remark,
			row.CreatedAt.Format("2006-01-02 15:04:05"),
		}
		if err := writer.Write(record); err != nil {
			InternalError(c, "生成 CSV 失败")
			return
		}
	}
	writer.Flush()

	filename := fmt.Sprintf("trades_%s.csv", time.Now().Format("20060102150405"))
	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

// ExportJSON 导出交易记录为 JSON
// @Summary 导出交易记录 JSON
// @Description 导出当前用户的全部交易记录为 JSON 文件
// @Tags 导出
// @Produce application/json
// @Security BearerAuth
// @Success 200 {file} file "JSON 文件"
// @Failure 401 {object} Response "未授权"
// @Router /api/v1/export/json [get]
func (h *ExportHandler) ExportJSON(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	rows, err := queryExportRows(userID)
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "查询数据失败"))
		return
	}

	data, err := json.MarshalIndent(rows, "", "  ")
	if err != nil {
		InternalError(c, "生成 JSON 失败")
		return
	}

	filename := fmt.Sprintf("trades_%s.json", time.Now().Format("20060102150405"))
	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Data(http.StatusOK, "application/json; charset=utf-8", data)
}

// ExportExcel 导出交易记录为 Excel
// @Summary 导出交易记录 Excel
// @Description 导出当前用户的全部交易记录为 .xlsx 文件
// @Tags 导出
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security BearerAuth
// @Success 200 {file} file "Excel 文件"
// @Failure 401 {object} Response "未授权"
// @Router /api/v1/export/excel [get]
func (h *ExportHandler) ExportExcel(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	rows, err := queryExportRows(userID)
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "查询数据失败"))
		return
	}

	f := excelize.NewFile()
	defer f.Close()

	sheetName := "交易记录"
	f.SetSheetName("Sheet1", sheetName)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 12, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"4F81BD"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})

	headers := []string{"ID", "账户", "预算", "类型", "金额", "备注", "时间"}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheetName, cell, header)
		f.SetCellStyle(sheetName, cell, cell, headerStyle)
	}

	for i, row := range rows {
		values := []interface{}{
			row.ID,
			row.AccountName,
			budgetNameOrEmpty(row.BudgetName),
			row.Type,
			row.Amount.StringFixed(2),
			row.Remark,
			row.CreatedAt.Format("2006-01-02 15:04:05"),
		}
		for j, v := range values {
			cell, _ := excelize.CoordinatesToCellName(j+1, i+2)
			f.SetCellValue(sheetName, cell, v)
		}
	}

	// 金额和时间列宽一点，避免显示成 ###
	f.SetColWidth(sheetName, "B", "D", 16)
	f.SetColWidth(sheetName, "E", "G", 20)

	buf, err := f.WriteToBuffer()
	if err != nil {
		InternalError(c, "生成 Excel 失败")
		return
	}

	filename := fmt.Sprintf("trades_%s.xlsx", time.Now().Format("20060102150405"))
	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}
