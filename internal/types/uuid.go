package types

import (
	"fmt"
	"strings"
	"sync"

	"github.com/oklog/ulid/v2"
	"github.com/teris-io/shortid"
)

// GenerateUUID returns a k-sortable unique identifier
func GenerateUUID() string {
	return ulid.Make().String()
}

// GenerateUUIDWithPrefix returns a k-sortable unique identifier
// with a prefix ex job_0ujsswThIGTUYm2K8FjOOfXtY1K
func GenerateUUIDWithPrefix(prefix string) string {
	if prefix == "" {
		return GenerateUUID()
	}
	return fmt.Sprintf("%s_%s", prefix, GenerateUUID())
}

var (
	sidGenerator *shortid.Shortid
	once         sync.Once
)

// initializeSID initializes the shortid generator once
func initializeSID() {
	var err error
	sidGenerator, err = shortid.New(1, shortid.DefaultABC, 2342)
	if err != nil {
		panic("failed to initialize shortid generator: " + err.Error())
	}
}

// GenerateShortIDWithPrefix returns a short ID with a prefix.
// Total length is capped at 12 characters, e.g., `sig_xYZ12A8Q`.
func GenerateShortIDWithPrefix(prefix string) string {
	once.Do(initializeSID)

	id, err := sidGenerator.Generate()
	if err != nil {
		return ""
	}
	id = strings.ReplaceAll(id, "-", "")

	availableLen := 12 - len(prefix)
	if availableLen <= 0 {
		return ""
	}

	if len(id) > availableLen {
		id = id[:availableLen]
	}

	return strings.ToUpper(fmt.Sprintf("%s%s", prefix, id))
}

const (
	// Prefixes for all domains and entities

	UUID_PREFIX_JOB              = "job"
	UUID_PREFIX_INVOICE          = "inv"
	UUID_PREFIX_INVOICE_LINE     = "inv_line"
	UUID_PREFIX_VIOLATION        = "vio"
	UUID_PREFIX_CHECKLIST        = "chk"
	UUID_PREFIX_CHECKLIST_ITEM   = "chk_item"
	UUID_PREFIX_INVENTORY_ITEM   = "item"
	UUID_PREFIX_STOCK_LEVEL      = "stock"
	UUID_PREFIX_USAGE_RECORD     = "usage"
	UUID_PREFIX_SIGNATURE        = "sig"
	UUID_PREFIX_NOTIFICATION     = "notif"
	UUID_PREFIX_REPORT_EXECUTION = "report"
	UUID_PREFIX_TENANT           = "tenant"
)
