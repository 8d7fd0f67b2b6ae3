package export

import (
	"fmt"
	"strings"

	"github.com/viewlens/viewlens-cli/internal/analysis"
)

// Devices writes the device-usage workbook: Customers, Summary,
// MultiDevice and Devices sheets.
func Devices(path string, u *analysis.DeviceUsage) error {
	f, err := newWorkbook("Customers")
	if err != nil {
		return err
	}
	defer f.Close()

	header := []string{"CUSTOMER_ID", "DEVICE_COUNT", "DEVICES", "MULTI_DEVICE", "TOTAL_VIEWS", "UNIQUE/TOTAL"}
	rows := make([][]interface{}, 0, len(u.Customers))
	multi := make([][]interface{}, 0, u.MultiDevice)
	for _, c := range u.Customers {
		flag := "No"
		if c.Multi {
			flag = "Yes"
		}
		row := []interface{}{
			c.CustomerID,
			c.DeviceCount,
			strings.Join(c.Devices, ", "),
			flag,
			c.Views,
			fmt.Sprintf("%d/%d", c.DeviceCount, c.Views),
		}
		rows = append(rows, row)
		if c.Multi {
			multi = append(multi, row)
		}
	}
	if err := writeSheet(f, "Customers", header, rows); err != nil {
		return err
	}

	if err := writeSummary(f, "Summary", [][2]interface{}{
		{"Unique customers", u.TotalCustomers},
		{"Customers on multiple devices", u.MultiDevice},
		{"Multiple-device percentage", fmt.Sprintf("%.1f%%", u.MultiPct)},
		{"Customers on a single device", u.SingleDevice},
		{"Customers on more than 2 devices", u.MoreThanTwo},
		{"Unique devices", len(u.Distribution)},
	}); err != nil {
		return err
	}

	if err := writeSheet(f, "MultiDevice", header, multi); err != nil {
		return err
	}

	dist := make([][]interface{}, 0, len(u.Distribution))
	for _, d := range u.Distribution {
		dist = append(dist, []interface{}{d.Device, d.Customers, d.Pct})
	}
	if err := writeSheet(f, "Devices", []string{"DEVICE", "CUSTOMERS", "PERCENTAGE"}, dist); err != nil {
		return err
	}
	return f.SaveAs(path)
}
