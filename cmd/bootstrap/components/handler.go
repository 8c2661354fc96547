package components

import (
	"tidybook/internal/handler"
	"tidybook/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewCatalogHandler,
		api.NewBookingHandler,
	),
	fx.Invoke(handler.NewRouter),
)
