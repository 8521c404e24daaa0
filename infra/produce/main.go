package produce

import amqp "github.com/rabbitmq/amqp091-go"

type Produce struct {
	MediaService *MediaProduceService
}

var produceInstance *Produce

func InitProduce(channel *amqp.Channel) *Produce {
	if produceInstance != nil {
		return produceInstance
	}

	mediaService := InitMediaProduceService(channel)
	if mediaService == nil {
		panic("Failed to initialize Media produce service")
	}

	produceInstance = &Produce{
		MediaService: mediaService,
	}

	return produceInstance
}

func GetProduce() *Produce {
	if produceInstance == nil {
		panic("Produce not initialized. Call InitProduce() first.")
	}
	return produceInstance
}
