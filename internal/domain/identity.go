package domain

// Identity тройка {пользователь, бизнес, роль}, извлечённая из токена доступа.
// Единственная точка принятия решений о правах: сервисы и usecase не
// дублируют проверки владения и роли по месту
type Identity struct {
	UserID     int64
	BusinessID int64
	Role       Role
}

// IsAdmin returns true if the identity carries the admin role
func (i Identity) IsAdmin() bool {
	return i.Role == RoleAdmin
}

// SameBusiness returns true if the resource belongs to the identity's business
func (i Identity) SameBusiness(businessID int64) bool {
	return i.BusinessID == businessID
}

// CanManage решает, может ли identity управлять ресурсом:
// админ управляет любым ресурсом своего бизнеса, обычный пользователь - только своим
func (i Identity) CanManage(ownerUserID, businessID int64) bool {
	if !i.SameBusiness(businessID) {
		return false
	}
	if i.IsAdmin() {
		return true
	}
	return i.UserID == ownerUserID
}
