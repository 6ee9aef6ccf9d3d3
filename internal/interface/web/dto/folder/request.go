package folder

type Request struct {
	Name string `form:"name"`
}
