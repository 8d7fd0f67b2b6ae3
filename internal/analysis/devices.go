package analysis

import (
	"sort"

	"github.com/samber/lo"

	"github.com/viewlens/viewlens-cli/internal/dataset"
)

// CustomerDevices is one customer's device footprint.
type CustomerDevices struct {
	CustomerID  string
	Devices     []string // distinct, sorted
	DeviceCount int
	Views       int
	Multi       bool
}

// DeviceShare is one device with the number of customers using it.
type DeviceShare struct {
	Device    string
	Customers int
	Pct       float64 // of all customers, 2 dp
}

// DeviceUsage answers whether customers consume video on more than one
// device.
type DeviceUsage struct {
	// Customers is sorted by device count descending, customer ID
	// ascending.
	Customers []CustomerDevices

	TotalCustomers int
	MultiDevice    int
	SingleDevice   int
	MoreThanTwo    int
	MultiPct       float64

	// Distribution counts customers per device, descending.
	Distribution []DeviceShare
}

// DevicesPerCustomer aggregates cleaned (customerID, device) pairs.
func DevicesPerCustomer(pairs [][2]string) (*DeviceUsage, error) {
	if len(pairs) == 0 {
		return nil, dataset.ErrNoRecords
	}
	devices := make(map[string]map[string]bool)
	views := make(map[string]int)
	for _, p := range pairs {
		id, dev := p[0], p[1]
		if devices[id] == nil {
			devices[id] = make(map[string]bool)
		}
		devices[id][dev] = true
		views[id]++
	}

	u := &DeviceUsage{TotalCustomers: len(devices)}
	u.Customers = make([]CustomerDevices, 0, len(devices))
	byDevice := make(map[string]int)
	for id, set := range devices {
		list := lo.Keys(set)
		sort.Strings(list)
		for _, dev := range list {
			byDevice[dev]++
		}
		cd := CustomerDevices{
			CustomerID:  id,
			Devices:     list,
			DeviceCount: len(list),
			Views:       views[id],
			Multi:       len(list) > 1,
		}
		u.Customers = append(u.Customers, cd)
		switch {
		case cd.DeviceCount == 1:
			u.SingleDevice++
		default:
			u.MultiDevice++
		}
		if cd.DeviceCount > 2 {
			u.MoreThanTwo++
		}
	}
	sort.Slice(u.Customers, func(i, j int) bool {
		if u.Customers[i].DeviceCount == u.Customers[j].DeviceCount {
			return u.Customers[i].CustomerID < u.Customers[j].CustomerID
		}
		return u.Customers[i].DeviceCount > u.Customers[j].DeviceCount
	})
	u.MultiPct = round2(float64(u.MultiDevice) * 100 / float64(u.TotalCustomers))

	u.Distribution = make([]DeviceShare, 0, len(byDevice))
	for dev, n := range byDevice {
		u.Distribution = append(u.Distribution, DeviceShare{
			Device:    dev,
			Customers: n,
			Pct:       round2(float64(n) * 100 / float64(u.TotalCustomers)),
		})
	}
	sort.Slice(u.Distribution, func(i, j int) bool {
		if u.Distribution[i].Customers == u.Distribution[j].Customers {
			return u.Distribution[i].Device < u.Distribution[j].Device
		}
		return u.Distribution[i].Customers > u.Distribution[j].Customers
	})
	return u, nil
}
