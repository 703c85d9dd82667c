package basestore

import (
	"fmt"

	"github.com/archdrift/archdrift/internal/contract"
)

// PrintStoreStatus prints baseline store status information.
func PrintStoreStatus(status contract.StoreStatus) {
	fmt.Printf("Baseline Backend: %s\n", status.Backend)
	fmt.Printf("Connected: %t\n", status.Connected)
	if !status.Connected {
		return
	}
	fmt.Printf("Total Snapshots: %d\n", status.TotalSnapshots)
	fmt.Printf("Applications: %d\n", status.Applications)
	if status.TotalSnapshots > 0 {
		fmt.Printf("Last Snapshot: %s\n", status.LastSnapshotTime.Format("2006-01-02 15:04:05"))
		fmt.Printf("Oldest Snapshot: %s\n", status.OldestSnapshotTime.Format("2006-01-02 15:04:05"))
	}
}
