package auth

const (
	RoleAdmin   = "admin"
	RoleHR      = "hr"
	RoleFinance = "finance"
	RoleViewer  = "viewer"
)

const (
	PermEmployeesRead  = "employees.read"
	PermEmployeesWrite = "employees.write"
	PermPayrollRead    = "payroll.read"
	PermPayrollImport  = "payroll.import"
	PermPayrollApprove = "payroll.approve"
	PermPayrollDelete  = "payroll.delete"
)

var RolePermissions = map[string][]string{
	RoleViewer: {
		PermEmployeesRead,
		PermPayrollRead,
	},
	RoleHR: {
		PermEmployeesRead,
		PermEmployeesWrite,
		PermPayrollRead,
		PermPayrollImport,
	},
	RoleFinance: {
		PermEmployeesRead,
		PermPayrollRead,
		PermPayrollImport,
		PermPayrollApprove,
	},
	RoleAdmin: {
		PermEmployeesRead,
		PermEmployeesWrite,
		PermPayrollRead,
		PermPayrollImport,
		PermPayrollApprove,
		PermPayrollDelete,
	},
}

// HasPermission reports whether a role carries a permission.
func HasPermission(role, permission string) bool {
	for _, p := range RolePermissions[role] {
		if p == permission {
			return true
		}
	}
	return false
}
