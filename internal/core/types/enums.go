package types

// Value tables for the enumerated entity fields. Order is significant: the
// generators index into these with the random source, so reordering changes
// every generated dataset.

var Nationalities = []string{
	"AFGHAN",
	"ALBANIAN",
	"ALGERIAN",
	"AMERICAN",
	"ANDORRAN",
	"ANGOLAN",
	"ANGUILLAN",
	"CITIZEN_OF_ANTIGUA_AND_BARBUDA",
	"ARGENTINE",
	"ARMENIAN",
	"AUSTRALIAN",
	"AUSTRIAN",
	"AZERBAIJANI",
	"BAHAMIAN",
	"BAHRAINI",
	"BANGLADESHI",
	"BARBADIAN",
	"BELARUSIAN",
	"BELGIAN",
	"BELIZEAN",
	"BENINESE",
	"BERMUDIAN",
	"BHUTANESE",
	"BOLIVIAN",
	"CITIZEN_OF_BOSNIA_AND_HERZEGOVINA",
	"BOTSWANAN",
	"BRAZILIAN",
	"BRITISH",
	"BRITISH_VIRGIN_ISLANDER",
	"BRUNEIAN",
	"BULGARIAN",
	"BURKINAN",
	"BURMESE",
	"BURUNDIAN",
	"CAMBODIAN",
	"CAMEROONIAN",
	"CANADIAN",
	"CAPE_VERDEAN",
	"CAYMAN_ISLANDER",
	"CENTRAL_AFRICAN",
	"CHADIAN",
	"CHILEAN",
	"CHINESE",
	"COLOMBIAN",
	"COMORAN",
	"CONGOLESE",
	"COOK_ISLANDER",
	"COSTA_RICAN",
	"CROATIAN",
	"CUBAN",
	"CYMRAES",
	"CYMRO",
	"CYPRIOT",
	"CZECH",
	"DANISH",
	"DJIBOUTIAN",
	"DOMINICAN",
	"CITIZEN_OF_THE_DOMINICAN_REPUBLIC",
	"DUTCH",
	"EAST_TIMORESE",
	"ECUADOREAN",
	"EGYPTIAN",
	"EMIRATI",
	"ENGLISH",
	"EQUATORIAL_GUINEAN",
	"ERITREAN",
	"ESTONIAN",
	"ETHIOPIAN",
	"FAROESE",
	"FIJIAN",
	"FILIPINO",
	"FINNISH",
	"FRENCH",
	"GABONESE",
	"GAMBIAN",
	"GEORGIAN",
	"GERMAN",
	"GHANAIAN",
	"GIBRALTARIAN",
	"GREEK",
	"GREENLANDIC",
	"GRENADIAN",
	"GUAMANIAN",
	"GUATEMALAN",
	"CITIZEN_OF_GUINEA_BISSAU",
	"GUINEAN",
	"GUYANESE",
	"HAITIAN",
	"HONDURAN",
	"HONG_KONGER",
	"HUNGARIAN",
	"ICELANDIC",
	"INDIAN",
	"INDONESIAN",
	"IRANIAN",
	"IRAQI",
	"IRISH",
	"ISRAELI",
	"ITALIAN",
	"IVORIAN",
	"JAMAICAN",
	"JAPANESE",
	"JORDANIAN",
	"KAZAKH",
	"KENYAN",
	"KITTITIAN",
	"CITIZEN_OF_KIRIBATI",
	"KOSOVAN",
	"KUWAITI",
	"KYRGYZ",
	"LAO",
	"LATVIAN",
	"LEBANESE",
	"LIBERIAN",
	"LIBYAN",
	"LIECHTENSTEIN_CITIZEN",
	"LITHUANIAN",
	"LUXEMBOURGER",
	"MACANESE",
	"MACEDONIAN",
	"MALAGASY",
	"MALAWIAN",
	"MALAYSIAN",
	"MALDIVIAN",
	"MALIAN",
	"MALTESE",
	"MARSHALLESE",
	"MARTINIQUAIS",
	"MAURITANIAN",
	"MAURITIAN",
	"MEXICAN",
	"MICRONESIAN",
	"MOLDOVAN",
	"MONEGASQUE",
	"MONGOLIAN",
	"MONTENEGRIN",
	"MONTSERRATIAN",
	"MOROCCAN",
	"MOSOTHO",
	"MOZAMBICAN",
	"NAMIBIAN",
	"NAURUAN",
	"NEPALESE",
	"NEW_ZEALANDER",
	"NICARAGUAN",
	"NIGERIAN",
	"NIGERIEN",
	"NIUEAN",
	"NORTH_KOREAN",
	"NORTHERN_IRISH",
	"NORWEGIAN",
	"OMANI",
	"PAKISTANI",
	"PALAUAN",
	"PALESTINIAN",
	"PANAMANIAN",
	"PAPUA_NEW_GUINEAN",
	"PARAGUAYAN",
	"PERUVIAN",
	"PITCAIRN_ISLANDER",
	"POLISH",
	"PORTUGUESE",
	"PRYDEINIG",
	"PUERTO_RICAN",
	"QATARI",
	"ROMANIAN",
	"RUSSIAN",
	"RWANDAN",
	"SALVADOREAN",
	"SAMMARINESE",
	"SAMOAN",
	"SAO_TOMEAN",
	"SAUDI_ARABIAN",
	"SCOTTISH",
	"SENEGALESE",
	"SERBIAN",
	"CITIZEN_OF_SEYCHELLES",
	"SIERRA_LEONEAN",
	"SINGAPOREAN",
	"SLOVAK",
	"SLOVENIAN",
	"SOLOMON_ISLANDER",
	"SOMALI",
	"SOUTH_AFRICAN",
	"SOUTH_KOREAN",
	"SOUTH_SUDANESE",
	"SPANISH",
	"SRI_LANKAN",
	"ST_HELENIAN",
	"ST_LUCIAN",
	"STATELESS",
	"SUDANESE",
	"SURINAMESE",
	"SWAZI",
	"SWEDISH",
	"SWISS",
	"SYRIAN",
	"TAIWANESE",
	"TAJIK",
	"TANZANIAN",
	"THAI",
	"TOGOLESE",
	"TONGAN",
	"TRINIDADIAN",
	"TRISTANIAN",
	"TUNISIAN",
	"TURKISH",
	"TURKMEN",
	"TURKS_AND_CAICOS_ISLANDER",
	"TUVALUAN",
	"UGANDAN",
	"UKRAINIAN",
	"URUGUAYAN",
	"UZBEK",
	"VATICAN_CITIZEN",
	"CITIZEN_OF_VANUATU",
	"VENEZUELAN",
	"VIETNAMESE",
	"VINCENTIAN",
	"WALLISIAN",
	"WELSH",
	"YEMENI",
	"ZAMBIAN",
	"ZIMBABWEAN",
}

var Subjects = []string{
	"LABORATORIO_DE_DESARROLLO_Y_HERRAMIENTAS",
	"INGENIERIA_LOGISTICA",
	"VISION_POR_COMPUTADOR",
	"ROBOTICA_COMPUTACIONAL",
	"INTERFACES_INTELIGENTES",
	"SISTEMAS_INTELIGENTES",
	"COMPLEJIDAD_COMPUTACIONAL",
	"SISTEMAS_EMPOTRADOS",
	"ARQUITECTURAS_AVANZADAS_Y_DE_PROPOSITO_ESPECIFICO",
	"SEGURIDAD_DE_SISTEMAS_INFORMATICOS",
	"NORMATIVA_Y_REGULACION",
	"SISTEMAS_DE_INFORMACION_CONTABLE",
	"GESTION_DE_LA_INNOVACION",
	"DESARROLLO_Y_MANTENIMENTO_DE_SISTEMAS_DE_INFORMACION",
	"TECNOLOGIAS_DE_LA_INFORMACION_PARA_LAS_ORGANIZACIONES",
	"SISTEMAS_Y_TECNOLOGIAS_WEB",
	"GESTION_DEL_CONOCIMIENTO_EN_LAS_ORGANIZACIONES",
}

var Departments = []string{
	"EDUCATION",
	"HEALTH_SCIENCES",
	"HUMANITIES",
	"BUSINESS",
	"TOURISM",
	"ECONOMICS",
	"LAW",
	"POLITICAL_SCIENCES",
	"SOCIAL_SCIENCES",
	"COMMUNICATION",
	"SCIENCES",
	"HIGHER_POLYTECHNIC_SCHOOL_OF_ENGINEERING",
	"HIGHER_POLYTECHNIC_SCHOOL_OF_ENGINEERING_AND_TECHNOLOGY",
	"SCHOOL_DOCTORAL_AND_GRADUATES_STUDIES",
}

var WorkLocationNames = []string{
	"MADRID",
	"BARCELONA",
	"SEVILLA",
	"VALENCIA",
	"ALICANTE",
	"MURCIA",
	"BILBAO",
	"ZARAGOZA",
	"MALAGA",
	"CORDOBA",
	"VALLADOLID",
	"VIGO",
	"GIJON",
	"GRANADA",
	"CADIZ",
	"VITORIA",
	"JEREZ_DE_LA_FRONTERA",
	"PAMPLONA",
	"SAN_SEBASTIAN",
	"PALMA_DE_MALLORCA",
	"ALMERIA",
	"GETAFE",
	"BURGOS",
	"ALBACETE",
	"SANTANDER",
	"SALAMANCA",
	"MARBELLA",
	"HUELVA",
	"TARRAGONA",
	"TOLEDO",
	"LAS_PALMAS_DE_GRAN_CANARIA",
	"SAN_SEBASTIAN_DE_LA_GOMERA",
	"PUERTO_DEL_ROSARIO",
	"ARRECIFE",
	"ADEJE",
	"PUERTO_DE_LA_CRUZ",
	"SANTA_CRUZ_DE_TENERIFE",
	"SAN_CRISTOBAL_DE_LA_LAGUNA",
}

var Grades = []string{
	"APPRENTICE",
	"ADMINISTRATIVE_OFFICER",
	"EXECUTIVE_OFFICER",
	"HIGHER_EXECUTIVE_OFFICER",
	"SENIOR_EXECUTIVE_OFFICER",
	"GRADE_7",
	"GRADE_6",
	"SENIOR_CIVIL_SERVICE",
}

var Sexes = []string{
	"MALE",
	"FEMALE",
}

var Relations = []string{
	"FATHER",
	"MOTHER",
	"SISTER",
	"BROTHER",
	"SPOUSE",
	"PARTNER",
	"FRIEND",
	"NEIGHBOUR",
	"SON",
	"DAUGHTER",
}

var PhoneNumberTypes = []string{
	"Home",
	"Work",
	"Work Mobile",
}

const PrimaryPhoneNumberType = "Mobile"

var ManagerTypes = []string{
	"Human Resources Manager",
	"Department Manager",
	"Career Manager",
}
