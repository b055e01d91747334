package suffix

// Built-in suffix identifiers, in catalog order.
const (
	Kor    Suffix = "kor"
	Pen    Suffix = "pen"
	Garri  Suffix = "garri"
	Keta   Suffix = "keta"
	Ezin   Suffix = "ezin"
	Keria  Suffix = "keria"
	Men    Suffix = "men"
	Aldi   Suffix = "aldi"
	Tegi   Suffix = "tegi"
	Buru   Suffix = "buru"
	Erraz  Suffix = "erraz"
	Kuntza Suffix = "kuntza"
	Kizun  Suffix = "kizun"
	Kide   Suffix = "kide"
	Bera   Suffix = "bera"
	Aro    Suffix = "aro"
	Kada   Suffix = "kada"
	Mendu  Suffix = "mendu"
	Gune   Suffix = "gune"
	Tasun  Suffix = "tasun"
)

const keriaExplanation = `Atzizki honek «nolakotasuna» adierazten du, baina beti gaitzespen-kutsu batekin.
Alde horretatik, -tasun atzizkiaren aurkaria litzateke.

Adibideak:
* erosotasun (comodidad) / *erosokeria* (dejadez)
* harrotasuna (orgullo) / *harrokeria* (fanfarronería)
* itsutasuna (ceguera) / *itsukeria* (obcecación)
* zikinkeria (suciedad, porquería)
* alferkeria (pereza, holgazanería)`

// builtinDetails is copied on every Default call so callers can never
// share or alter it.
func builtinDetails() []Detail {
	return []Detail{
		{Kor, "-kor", "Joera edo zaletasuna adierazten du. Nolakotasuna adierazten duten izenondoak sortzeko erabiltzen da.\n\nAdibideak:\n* beldur*kor* (beldurtia)\n* gizalege*kor* (gizalegezkoa)\n* lagun*kor* (lagunkoia)\n* umore*kor* (umoretsua)"},
		{Pen, "-pen", "Ekintza edo sentimendu baten ondorioa edo emaitza adierazten du. Aditzoinari gehitzen zaio izen abstraktuak sortzeko.\n\nAdibideak:\n* itxaro*pen* (itxarotearen ondorioa)\n* ikus*pen* (ikustearen ondorioa)\n* senti*pen* (sentitzearen ondorioa)\n* oroi*pen* (oroitzearen ondorioa)\n* gara*pen* (garatzearen ondorioa)"},
		{Garri, "-garri", "Zerbait eragiten edo sortzen duena, edo zerbaitetarako egokia dena adierazten du.\n\nAdibideak:\n* erabil*garri* (erabil daitekeena)\n* ikus*garri* (ikus daitekeena, ikustekoa)\n* ezin sinetsiz*garri* (sinestezina)\n* onar*garri* (onartzeko modukoa)"},
		{Keta, "-keta", "Ekintza edo prozesu bat adierazten du, askotan modu intentsiboan edo errepikakorrean.\n\nAdibideak:\n* berri*keta* (berriketan aritzea)\n* azter*keta* (aztertzea)\n* hausnar*keta* (hausnartzea)\n* lehia*keta* (lehian aritzea)"},
		{Ezin, "-ezin", "Ezintasuna edo zerbait egiteko ezintasuna adierazten du. Askotan aditz-izenarekin batera erabiltzen da.\n\nAdibideak:\n* *ezin* etorri (etortzeko ezintasuna)\n* *ezin* egin (egiteko ezintasuna)\n* *ezin* sinetsi (sinesteko ezintasuna)\n* *ezin* ikusi (ikusteko ezintasuna)"},
		{Keria, "-keria", keriaExplanation},
		{Men, "-men", "Ekintza baten ondorioa, emaitza edo horrekin lotutako kontzeptu abstraktua adierazten du.\n\nAdibideak:\n* agindu*men* (agintzeko ahalmena)\n* ezagu*men* (ezagutzeko gaitasuna)\n* uler*men* (ulertzeko gaitasuna)\n* eska*men* (eskatzea)"},
		{Aldi, "-aldi", "Denbora-tartea edo gertaera bat adierazten du.\n\nAdibideak:\n* denbor*aldi* (denbora tartea)\n* gazt*aldi* (gaztaroa)\n* ekaitz*aldi* (ekaitz garaia)\n* goiz*aldi* (goizeko tartea)"},
		{Tegi, "-tegi", "Lekua edo zerbait gordetzeko tokia adierazten du.\n\nAdibideak:\n* liburu*tegi* (liburuak gordetzeko tokia)\n* lan*tegi* (lan egiteko tokia)\n* abel*tegi* (abelgorriak gordetzeko tokia)\n* har*tegi* (harria ateratzeko tokia)"},
		{Buru, "-buru", "Joera, zaletasuna edo kualitate bat adierazten du, askotan pertsona bati lotuta.\n\nAdibideak:\n* lotsa*buru* (lotsatia)\n* harro*buru* (harroa)\n* lan*buru* (langilea)\n* buruargi (listo)"},
		{Erraz, "-erraz", "Modua edo erraztasuna adierazten du. 'Erraz' hitzarekin lotuta dago.\n\nAdibideak:\n* uler*erraz* (ulertzeko erraza)\n* eusk*erraz* (euskaraz erraz egiten duena)\n* jan*erraz* (jateko erraza)"},
		{Kuntza, "-kuntza", "Ekintza, prozesua edo jarduera baten emaitza edo multzoa adierazten du. Izen abstraktuak sortzen ditu.\n\nAdibideak:\n* hez*kuntza* (heztearen ekintza)\n* sor*kuntza* (sortzearen ekintza)\n* iker*kuntza* (ikertzearen ekintza)"},
		{Kizun, "-kizun", "Egin behar den zerbait edo etorkizuneko ekintza bat adierazten du.\n\nAdibideak:\n* egin*kizun* (egitekoa)\n* ikus*kizun* (ikuskizuna)\n* galde*kizun* (galdera)"},
		{Kide, "-kide", "Parte-hartzea, kidetasuna edo talde berekoa izatea adierazten du.\n\nAdibideak:\n* lan*kide* (laneko laguna)\n* bidai*kide* (bidaia laguna)\n* ikas*kide* (ikasketetako laguna)"},
		{Bera, "-bera", "Joera edo sentikortasuna adierazten du. 'Bera' hitzak 'sentibera' esan nahi du batzuetan.\n\nAdibideak:\n* lotsa*bera* (lotsatia)\n* min*bera* (erraz min hartzen duena)\n* maite*bera* (erraz maitemintzen dena)"},
		{Aro, "-aro", "Denbora-tarte, garai edo aro bat adierazten du.\n\nAdibideak:\n* haurtz*aro* (haurra izateko garaia)\n* gazt*aro* (gaztea izateko garaia)\n* ud*aro* (uda garaia)"},
		{Kada, "-kada", "Kolpea, ekintza edo kopuru bat adieraz dezake.\n\nAdibideak:\n* osti*kada* (ostiko baten kolpea)\n* besark*ada* (besarkada)\n* mil*aka* (milako kopurua)"},
		{Mendu, "-mendu", "Ekintza baten emaitza, egoera edo prozesua adierazten du. Izen abstraktuak sortzeko erabiltzen da.\n\nAdibideak:\n* gara*mendu* (garatzea)\n* alda*mendu* (aldatzea)\n* senti*mendu* (sentitzea)"},
		{Gune, "-gune", "Lekua, tokia edo eremu bat adierazten du.\n\nAdibideak:\n* lan*gune* (lan egiteko tokia)\n* atseden*gune* (atseden hartzeko tokia)\n* bil*gune* (biltzeko tokia)"},
		{Tasun, "-tasun", "Nolakotasuna, egoera edo kualitatea adierazten du. Izen abstraktuak sortzen ditu.\n\nAdibideak:\n* eder*tasun* (ederra izatea)\n* zorion*tasun* (zoriontsu izatea)\n* anai*tasun* (anaiarteko harremana)"},
	}
}

// Default returns the built-in catalog.
func Default() *Catalog {
	c, err := NewCatalog(builtinDetails()...)
	if err != nil {
		// identifiers above are constants; this only trips on a bad edit
		panic(err)
	}
	return c
}
