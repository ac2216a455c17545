package constants

import "fmt"

const ErrOnlyAdminsCanAccess = "Forbidden: only admins can access %s"

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}
