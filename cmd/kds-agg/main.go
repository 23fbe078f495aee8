package main

import (
	"context"

	"github.com/zxjshishen/CJ-DC/config"
	"github.com/zxjshishen/CJ-DC/internal/service"
	"github.com/zxjshishen/CJ-DC/internal/storage"
)

func main() {
	rdb := config.MustInitRedis()
	defer rdb.Close()

	reader := config.NewKafkaReader("orders", "kds-agg-consumer")
	defer reader.Close()

	consumer := service.NewKDSConsumer(reader, storage.NewBoard(rdb))
	consumer.Start(context.Background())
}
