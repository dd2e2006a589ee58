package tools

import (
	"context"

	"github.com/getkin/kin-openapi/openapi3"
)

type noArgs struct{}

func (h Handlers) getMenuTool() Tool {
	return newTool("get_menu", "Return the current menu, the delivery fee and the tax rate.", openapi3.NewObjectSchema(),
		func(context.Context, noArgs) (any, error) {
			return NewMenuPayload(h.GetMenu.Handle()), nil
		})
}
