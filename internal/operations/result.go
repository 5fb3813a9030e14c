// file: internal/operations/result.go
// version: 1.0.0
// guid: cfc85e0c-113c-4ed3-9210-9c7ec2c482b2

package operations

// Type names a catalog operation
type Type string

const (
	TypeAdd         Type = "add"
	TypeBorrow      Type = "borrow"
	TypeReturn      Type = "return"
	TypeDownload    Type = "download"
	TypeShow        Type = "show"
	TypeDescribe    Type = "describe"
	TypeList        Type = "list"
	TypeCount       Type = "count"
	TypeAdjustPages Type = "adjust_pages"
)

// Status is the user-visible outcome of an operation
type Status string

const (
	StatusOK       Status = "ok"
	StatusNotFound Status = "not_found"
	StatusRejected Status = "rejected"
)

// Result is what an operation reports back to the shell.
// Not found and rejected are normal outcomes, not errors.
type Result struct {
	Type    Type
	Status  Status
	Message string
}

// OK reports whether the operation applied
func (r Result) OK() bool { return r.Status == StatusOK }
