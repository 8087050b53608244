package sim

import (
	"github.com/jwmdev/shipsim/internal/network"
	"github.com/jwmdev/shipsim/internal/value"
)

// Customer is a Location's shipping record: the spec's "Customer"
// attribute group (Transfer Rate, Shipment Size, Destination) plus the
// read-only accumulated metrics a Manager updates as shipments arrive. A
// Customer with a TransferRate of 0 only receives; a destination with no
// Customer of its own gets one on its first delivery.
type Customer struct {
	Location     *network.Location
	TransferRate float64 // packages/day
	ShipmentSize value.PackageNum
	Destination  *network.Location

	shipmentsReceived int
	sumLatency        float64 // hours, across received shipments
	totalCost         value.Dollar
}

// NewCustomer builds a Customer whose ShipmentGenerator fires once every
// 24/TransferRate hours, per spec.md §4.3. A TransferRate of 0 means no
// generator is scheduled for it.
func NewCustomer(loc, destination *network.Location, transferRate float64, shipmentSize value.PackageNum) *Customer {
	return &Customer{Location: loc, TransferRate: transferRate, ShipmentSize: shipmentSize, Destination: destination}
}

func (c *Customer) ShipmentsReceived() int { return c.shipmentsReceived }

// AverageLatency is the mean hours-in-transit across every shipment this
// customer has received, or zero if none have arrived yet.
func (c *Customer) AverageLatency() value.Hour {
	if c.shipmentsReceived == 0 {
		return 0
	}
	return value.MustHour(c.sumLatency / float64(c.shipmentsReceived))
}

func (c *Customer) TotalCost() value.Dollar { return c.totalCost }

func (c *Customer) credit(latency value.Hour, cost value.Dollar) {
	c.shipmentsReceived++
	c.sumLatency += latency.Float64()
	c.totalCost = value.Dollar(c.totalCost.Float64() + cost.Float64())
}
