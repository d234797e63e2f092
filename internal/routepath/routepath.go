// Package routepath holds the fixed paths shared by the server, the pages
// and the CLI client.
package routepath

const (
	// Root is the site root; it always redirects to AdminDashboard.
	Root = "/"
	// AdminDashboard is the permanent redirect target for Root.
	AdminDashboard = "/admin"
	// AdminStations is the station list page shell.
	AdminStations = "/admin/stations"
	// AdminStationsList is the deferred station list fragment.
	AdminStationsList = "/admin/stations/list"
	// Login is where the client lands after logout.
	Login = "/login"

	// APITestDB is the diagnostic Stations probe.
	APITestDB = "/api/test-db"
	// APILogout clears the auth cookie.
	APILogout = "/api/auth/logout"
	// APIUserRegister creates an account.
	APIUserRegister = "/api/user/register"
	// APIUserLogin signs in and sets the auth cookie.
	APIUserLogin = "/api/user/login"
	// APIUserStatus reports the authenticated user.
	APIUserStatus = "/api/user/status"
)
