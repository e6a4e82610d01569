package main

import (
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"drawguess/internal/config"
	"drawguess/internal/room"
	"drawguess/internal/words"
	"drawguess/logger"
)

func main() {
	cfg := config.Load()

	bank := words.Default()
	if cfg.WordFile != "" {
		var err error
		bank, err = words.Load(cfg.WordFile)
		if err != nil {
			logger.Error("word bank %s: %v, falling back to default list", cfg.WordFile, err)
			bank = words.Default()
		}
	}
	logger.Info("word bank loaded, %d words", bank.Len())

	reg := room.NewRegistry(bank)
	app := fiber.New()
	app.Use(cors.New())

	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			c.Locals("allowed", true)
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})

	app.Get("/ws/:roomId", websocket.New(func(c *websocket.Conn) {
		r := reg.GetOrCreate(c.Params("roomId"))

		// Fallback id until the join message supplies the real one.
		s := room.NewSession(uuid.NewString(), c, cfg.SendBuffer, rate.Limit(cfg.MsgRate), cfg.MsgBurst)
		go s.ReadPump(r)
		s.WritePump()
	}))

	app.Get("/api/rooms", func(c *fiber.Ctx) error {
		return c.JSON(reg.Snapshot())
	})

	app.Get("/", func(c *fiber.Ctx) error { return c.SendString("ok") })

	logger.Info("listening on %s", cfg.Addr)
	if err := app.Listen(cfg.Addr); err != nil {
		logger.Error("listen: %v", err)
	}
}
