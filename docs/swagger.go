// Package docs Pasajes Service API.
//
// Бэкенд продажи билетов: справочные данные (маршруты, единицы транспорта,
// типы билетов), список, продажа и удаление билетов, CSV-выгрузка.
//
//	Schemes: http
//	BasePath: /
//	Version: 1.0.0
//
//	Consumes:
//	- application/json
//
//	Produces:
//	- application/json
//	- text/csv
//
// swagger:meta
package docs
