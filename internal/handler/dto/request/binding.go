package request

type BindRequest struct {
	Code string `json:"code" binding:"required,max=32"`
}
