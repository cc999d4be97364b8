package blogservice

import "github.com/MamunHossain005/blog-website-server/internal/common"

func validateTitle(v *common.Validator, title string) {
	v.Check(title != "", "title", "must be provided")
	v.Check(len(title) <= 200, "title", "must not be more than 200 characters long")
}
