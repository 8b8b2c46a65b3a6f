package mocks

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name Store --dir ../platform/kvstore --output platform/kvstore --outpkg kvstoremock --filename store_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name Repository --dir ../domain/group --output domain/group --outpkg groupmock --filename repository_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name Repository --dir ../domain/player --output domain/player --outpkg playermock --filename repository_mock.go
