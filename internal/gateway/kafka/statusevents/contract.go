//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=statusevents_test
package statusevents

type producer interface {
	SendMessage(topic string, key string, value []byte) (partition int32, offset int64, err error)
}
