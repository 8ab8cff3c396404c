package handler

import (
	"encoding/json"
	"lottery_manager/database"
	"lottery_manager/helper"
	"lottery_manager/utils"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
)

func WinningNumbersSocket() fiber.Handler {
	return websocket.New(WinningNumbersConnection)
}

// WinningNumbersConnection gửi kết quả hiện tại rồi giữ kết nối để nhận các lần quay mới
func WinningNumbersConnection(c *websocket.Conn) {
	hub := helper.Draws.Hub()
	defer func() {
		hub.Unregister(c)
		c.Close()
	}()

	// Gửi kết quả lần đầu
	draw, err := helper.GetLatestWinningNumbers(database.DB)
	if err != nil {
		utils.Log.WithError(err).Warn("load latest winning numbers for socket failed")
	}
	payload, err := json.Marshal(draw)
	if err != nil {
		utils.Log.WithError(err).Error("encode winning numbers for socket failed")
		return
	}
	if err := c.WriteMessage(websocket.TextMessage, payload); err != nil {
		return
	}

	hub.Register(c)

	// Client không gửi gì, đọc để phát hiện khi đóng kết nối
	for {
		if _, _, err := c.ReadMessage(); err != nil {
			return
		}
	}
}
