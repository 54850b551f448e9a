package user

type Permission string

const (
	PermissionEmployeesView   Permission = "employees.view"
	PermissionEmployeesManage Permission = "employees.manage"

	PermissionAttendanceView   Permission = "attendance.view"
	PermissionAttendanceManage Permission = "attendance.manage"

	PermissionLeaveView   Permission = "leave.view"
	PermissionLeaveManage Permission = "leave.manage"

	PermissionPayrollView   Permission = "payroll.view"
	PermissionPayrollManage Permission = "payroll.manage"

	PermissionReportsView Permission = "reports.view"

	PermissionSettingsView   Permission = "settings.view"
	PermissionSettingsManage Permission = "settings.manage"

	PermissionUsersManage Permission = "users.manage"
)

// AllPermissions is the fixed permission set.
var AllPermissions = []Permission{
	PermissionEmployeesView,
	PermissionEmployeesManage,
	PermissionAttendanceView,
	PermissionAttendanceManage,
	PermissionLeaveView,
	PermissionLeaveManage,
	PermissionPayrollView,
	PermissionPayrollManage,
	PermissionReportsView,
	PermissionSettingsView,
	PermissionSettingsManage,
	PermissionUsersManage,
}

// RolePermissions maps roles to the permissions a new user of that role gets
var RolePermissions = map[Role][]Permission{
	RoleCreator: AllPermissions,
	RoleAdmin:   AllPermissions,
	RoleHR: {
		PermissionEmployeesView,
		PermissionEmployeesManage,
		PermissionAttendanceView,
		PermissionAttendanceManage,
		PermissionLeaveView,
		PermissionLeaveManage,
		PermissionPayrollView,
		PermissionPayrollManage,
		PermissionReportsView,
		PermissionSettingsView,
	},
	RoleSupervisor: {
		PermissionEmployeesView,
		PermissionAttendanceView,
		PermissionAttendanceManage,
		PermissionLeaveView,
		PermissionLeaveManage,
		PermissionReportsView,
	},
	RoleEngineer: {
		PermissionEmployeesView,
		PermissionAttendanceView,
		PermissionLeaveView,
	},
}

// DefaultPermissions returns a copy of the role's default permission set
func DefaultPermissions(role Role) []Permission {
	perms := RolePermissions[role]
	out := make([]Permission, len(perms))
	copy(out, perms)
	return out
}

// IsKnownPermission reports whether p belongs to the fixed set
func IsKnownPermission(p Permission) bool {
	for _, known := range AllPermissions {
		if known == p {
			return true
		}
	}
	return false
}
