package translate

// spanish maps en-US message keys to their es translation.
var spanish = map[string]string{
	// codec
	"binary length %d is not a multiple of 4": "la longitud binaria %d no es divisible por 4",
	"'%v' is not a binary number":             "el número %v debería ser un número binario",
	"'%v' is not a hexadecimal number":        "el número %v debería ser un número hexadecimal",

	// assembler
	"label \"%v\" is duplicated": "el label \"%v\" está duplicado",
	"label \"%v\" does not exist": "label inexistente: \"%v\"",
	"program has %d or more instructions and overwrites the exception vector": "el programa tiene %d o más instrucciones y sobreescribe el vector de excepciones",
	"register invalid":   "registro inválido",
	"register %v invalid": "registro %v inválido",

	// parser
	"line %d \"%v\": %v":              "línea %d \"%v\": %v",
	"invalid instruction":             "instrucción inválida",
	"invalid R-type instruction":      "instrucción tipo R inválida",
	"invalid D-type instruction":      "instrucción tipo D inválida",
	"invalid I-type instruction":      "instrucción tipo I inválida",
	"invalid CBZ instruction":         "instrucción CBZ inválida",
	"invalid BR instruction":          "instrucción BR inválida",
	"invalid MRS instruction":         "instrucción MRS inválida",
	"'%v' is not a number":            "'%v' no es un número",
	"$(%v) is not a valid expression": "$(%v) no es una expresión válida",
	".equ syntax":                     "sintaxis de .equ inválida",
	".equ duplicated":                 ".equ duplicado",
}
