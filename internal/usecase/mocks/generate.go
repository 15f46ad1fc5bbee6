package mocks

//go:generate mockgen -source=../../domain/repository/repository.go -destination=mock_repository.go -package=mocks
//go:generate mockgen -source=../../domain/qrcode/qrcode.go -destination=mock_qrcode.go -package=mocks
