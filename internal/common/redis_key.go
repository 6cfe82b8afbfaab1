package common

import "fmt"

func RedisKeyDrawResult(drawNumber int) string {
	return fmt.Sprintf("drawresult:%d", drawNumber)
}
