package department

import "github.com/notch-hr/notch-backend-go/internal/domain/employee"

// Department groups employees; the relation is read-side only so the JSON
// graph stays acyclic (employees carry departmentId, departments list their
// employees only when fetched by id).
type Department struct {
	ID        int64               `json:"id"`
	Name      string              `json:"name"`
	ManagerID int64               `json:"managerId"`
	Employees []employee.Employee `json:"employees,omitempty"`
}
