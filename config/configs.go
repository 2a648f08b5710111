package config

import (
	"encoding/xml"
	"fmt"
	"os"
)

var MainRouter string
var Dbname string
var Download string
var SystemEPSG int
var MainConfig Config

// SystemEPSGDefault is the storage coordinate system (ETRS-TM35FIN).
const SystemEPSGDefault = 3067

type Config struct {
	XMLName    xml.Name `xml:"config"`
	MainRouter string   `xml:"MainRouter"`
	Dbname     string   `xml:"dbname"`
	Host       string   `xml:"host"`
	Port       string   `xml:"port"`
	Username   string   `xml:"user"`
	Password   string   `xml:"password"`
	SystemEPSG int      `xml:"SystemEPSG"`
	Download   string   `xml:"download"`
}

func init() {

	SystemEPSG = SystemEPSGDefault

	xmlFile, err := os.Open("config.xml")
	if err != nil {
		fmt.Println("Error  opening  file:", err)
		return
	}
	defer xmlFile.Close()

	xmlDecoder := xml.NewDecoder(xmlFile)
	err = xmlDecoder.Decode(&MainConfig)
	if err != nil {
		fmt.Println("Error  decoding  XML:", err)
		return
	}
	MainRouter = MainConfig.MainRouter
	Dbname = MainConfig.Dbname
	Download = MainConfig.Download
	if MainConfig.SystemEPSG != 0 {
		SystemEPSG = MainConfig.SystemEPSG
	}
}
