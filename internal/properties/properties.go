package properties

import (
	"os"
	"strconv"
)

func RootPath() string {
	root := os.Getenv("ROOT_PATH")
	if root == "" {
		return "."
	}
	return root
}

// Workers caps the per-index fan-out in the compute batch.
func Workers() int {
	n, err := strconv.Atoi(os.Getenv("COMPUTE_WORKERS"))
	if err != nil || n < 1 {
		return 8
	}
	return n
}

func DiscordErrorNotificationUrl() string {
	return os.Getenv("DISCORD_ERROR_NOTIFICATION_URL")
}

func DiscordSuccessNotificationUrl() string {
	return os.Getenv("DISCORD_SUCCESS_NOTIFICATION_URL")
}

func CopernicusClientID() string {
	return os.Getenv("COPERNICUS_CLIENT_ID")
}

func CopernicusClientSecret() string {
	return os.Getenv("COPERNICUS_CLIENT_SECRET")
}

func CopernicusTokenURL() string {
	return os.Getenv("COPERNICUS_TOKEN_URL")
}
