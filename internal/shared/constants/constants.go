package constants

const (
	// Environment constants
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"

	// Default pagination
	DefaultPage     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100

	// HTTP Headers
	HeaderContentType    = "Content-Type"
	HeaderAuthorization  = "Authorization"
	HeaderXRequestID     = "X-Request-ID"
	HeaderXForwardedFor  = "X-Forwarded-For"
	HeaderRequesterEmail = "X-Requester-Email"

	// Context keys
	ContextKeyUserID    = "user_id"
	ContextKeyUser      = "identity_user"
	ContextKeyRequestID = "request_id"

	// Approval statuses
	ApprovalStatusPending  = "pending"
	ApprovalStatusApproved = "approved"
	ApprovalStatusRejected = "rejected"
	ApprovalStatusOnHold   = "on_hold"

	// Action names
	ActionApprove   = "approve"
	ActionReject    = "reject"
	ActionHold      = "hold"
	ActionReprocess = "reprocess"

	// Suppression statuses
	SuppressionStatusActive  = "active"
	SuppressionStatusRemoved = "removed"

	// Role slugs
	RoleSlugAdmin   = "admin"
	RoleSlugDefault = "user"

	// Permission slugs
	PermissionVehicleRead      = "vehicle:read"
	PermissionVehicleWrite     = "vehicle:write"
	PermissionLicenseRead      = "license:read"
	PermissionLicenseWrite     = "license:write"
	PermissionDocumentRead     = "document:read"
	PermissionDocumentWrite    = "document:write"
	PermissionActionApply      = "action:apply"
	PermissionSuppressionRead  = "suppression:read"
	PermissionSuppressionWrite = "suppression:write"
	PermissionAdminManage      = "admin:manage"

	// Database table names
	TableUsers              = "users"
	TableRoles              = "roles"
	TablePermissions        = "permissions"
	TableUserRoles          = "user_roles"
	TableRolePermissions    = "role_permissions"
	TableEmailRoleMappings  = "email_role_mappings"
	TableActionTypes        = "action_types"
	TableActionLogs         = "action_logs"
	TableSuppressions       = "suppressions"
	TableAccessRequests     = "suppression_access_requests"
	TableIdentityAliases    = "suppression_identity_aliases"
	TableVehicleRecords     = "vehicle_registrations"
	TableDriverLicenses     = "driver_licenses"
	TableLicenseContacts    = "license_contacts"
	TableDocuments          = "documents"
	TableAgencies           = "agencies"

	// Default values
	UnknownIPAddress = "unknown"
)
