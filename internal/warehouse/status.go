package warehouse

import (
	"fmt"

	"github.com/mateuslg/flightmart/schema"
)

// PrintWarehouseStatus prints warehouse status information.
func PrintWarehouseStatus(status schema.WarehouseStatus) {
	fmt.Printf("Warehouse Backend: %s\n", status.Backend)
	fmt.Printf("Connected: %t\n", status.Connected)
	if !status.Connected {
		return
	}
	fmt.Printf("Fact Rows: %d\n", status.FactRows)
	fmt.Println("Table Sizes:")
	for table, size := range status.TableSizes {
		fmt.Printf("  %s: %d rows\n", table, size)
	}
}
