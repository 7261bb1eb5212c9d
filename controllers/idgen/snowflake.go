// controllers/idgen/snowflake.go
package idgen

import (
	"fmt"
	"log"

	"github.com/bwmarrin/snowflake"
)

var node *snowflake.Node

func Init() {
	var err error
	node, err = snowflake.NewNode(1)
	if err != nil {
		log.Fatalf("Failed to init Snowflake: %v", err)
	}
}

func GenerateID() int64 {
	return node.Generate().Int64()
}

// DocumentNumber builds a warehouse document number, e.g. PZ-1849261...
// for receipts and WZ-... for issues.
func DocumentNumber(prefix string) string {
	return fmt.Sprintf("%s-%d", prefix, GenerateID())
}
