package web

const (
	RouteHome   = "/"
	RouteSignup = "/signup"
	RouteLogin  = "/login"
	RouteLogout = "/logout"

	RouteFolders      = "/folders"
	RouteFolder       = RouteFolders + "/:folderId"
	RouteFolderDelete = RouteFolder + "/delete"
	RouteFolderRename = RouteFolder + "/rename"
	RouteFolderUpload = RouteFolder + "/upload"

	RouteFile       = RouteFolder + "/files/:fileId"
	RouteFileDelete = RouteFile + "/delete"

	// ops
	RouteHealth  = "/healthz"
	RouteMetrics = "/metrics"
)
